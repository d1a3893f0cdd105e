// Command player drives a playback session against a running API server:
// it fetches a course, selects a lesson and prints the signed playback URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/coursedeck/backend/internal/clients"
	"github.com/coursedeck/backend/internal/player"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "API server base URL")
	token := flag.String("token", "", "viewer access token")
	courseID := flag.String("course", "", "course ID to open")
	lessonID := flag.String("lesson", "", "lesson ID to select (defaults to the first lesson)")
	wait := flag.Duration("wait", 10*time.Second, "how long to wait for a playback URL")
	flag.Parse()

	if *token == "" || *courseID == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *wait)
	defer cancel()

	courseClient := clients.NewCourseClient(*server, *token, nil)
	course, err := courseClient.GetCourse(ctx, *courseID)
	if err != nil {
		logger.Fatal("failed to fetch course", zap.Error(err))
	}

	session := player.NewSession(clients.NewSigningClient(*server, *token, nil), logger)
	defer session.Close()

	session.SetCourse(course.Sections)
	if *lessonID != "" {
		session.SelectLesson(*lessonID)
	}

	lesson := session.CurrentLesson()
	if lesson == nil {
		logger.Fatal("course has no lessons", zap.String("course_id", *courseID))
	}
	fmt.Printf("course: %s\nlesson: %s (%s)\n", course.Title, lesson.Title, lesson.ID)

	if lesson.VideoURL == "" {
		fmt.Println("lesson has no video")
		return
	}

	// Signing runs asynchronously; poll until the URL arrives or the wait expires
	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		if url := session.PlaybackURL(); url != "" {
			fmt.Printf("playback url: %s\n", url)
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	logger.Fatal("no playback url within wait window", zap.String("lesson_id", lesson.ID))
}
