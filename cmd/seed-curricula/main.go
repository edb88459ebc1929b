package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/stemsi/curriforge/internal/config"
	"github.com/stemsi/curriforge/internal/database"
	"github.com/stemsi/curriforge/internal/logger"
	"github.com/stemsi/curriforge/internal/model"
	"github.com/stemsi/curriforge/internal/service"
)

type sample struct {
	subject  string
	audience string
	duration string
}

var samples = []sample{
	{"Introduction to Python", "High school students", "6 weeks"},
	{"Digital Photography", "Hobbyists", "4 weeks"},
	{"Linear Algebra", "First-year engineering students", "1 semester"},
	{"Public Speaking", "Early-career professionals", "3 weeks"},
	{"Organic Gardening", "Retirees", "8 weeks"},
	{"Data Journalism", "Newsroom staff", "5 weeks"},
	{"Conversational Spanish", "Beginners", "10 weeks"},
	{"Personal Finance", "University freshmen", "2 weeks"},
}

func main() {
	n := flag.Int("n", len(samples), "Number of curricula to insert")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := database.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open curriculum store")
	}
	defer store.Close()

	curriculumService := service.NewCurriculumService(store, log)

	fmt.Printf("=== Seeding %d Curricula ===\n", *n)

	successCount := 0
	for i := 0; i < *n; i++ {
		s := samples[i%len(samples)]
		title := fmt.Sprintf("%s for %s", s.subject, s.audience)
		content := seedContent(s)

		c, err := curriculumService.Create(ctx, &model.CreateCurriculumRequest{
			Title:    &title,
			Subject:  &s.subject,
			Audience: &s.audience,
			Duration: &s.duration,
			Content:  &content,
		})
		if err != nil {
			fmt.Printf("Error creating %q: %v\n", title, err)
			continue
		}
		successCount++
		fmt.Printf("Created #%d %s\n", c.ID, title)
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d curricula.\n", successCount, *n)
}

func seedContent(s sample) string {
	return fmt.Sprintf(`# %s

## Course Overview
A %s course on %s designed for %s.

## Learning Objectives
- Understand the core vocabulary of %s
- Apply the main techniques in guided exercises

## Weekly/Module Breakdown
1. Foundations
2. Practice
3. Project

## Recommended Resources
- Instructor notes

## Assessment Strategies
- Final project review
`, s.subject, s.duration, s.subject, s.audience, s.subject)
}
