package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fadilmartias/rozgar/internal/config"
	"github.com/fadilmartias/rozgar/internal/scoring"
	"github.com/fadilmartias/rozgar/internal/taker"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	apiURL := flag.String("api", config.LoadAppConfig().BaseURL, "Rozgar API base URL")
	jobID := flag.String("job", "", "job id whose screening test to take")
	userID := flag.String("user", "", "candidate id or email")
	flag.Parse()

	if *jobID == "" || *userID == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := taker.NewAPIClient(*apiURL, 30*time.Second)
	session := taker.NewSession(client, *jobID, *userID, taker.WithOnChange(render))

	if err := session.Load(ctx); err != nil {
		log.Fatalf("load test: %v", err)
	}

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(lines)
	}()

	fmt.Println("Press Enter to start the test.")
	if _, ok := <-lines; !ok {
		return
	}
	if err := session.Start(); err != nil {
		log.Fatal(err)
	}

	go func() {
		if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("timer: %v", err)
		}
	}()

	fmt.Println("Commands: 1-9 select option, n next, p previous, s submit, q quit")
	for {
		select {
		case <-ctx.Done():
			return
		case <-session.Done():
			report(session.Snapshot())
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if quit := handle(ctx, session, line, lines); quit {
				return
			}
		}
	}
}

func handle(ctx context.Context, s *taker.Session, line string, lines <-chan string) bool {
	var err error
	switch line {
	case "":
		return false
	case "q":
		return true
	case "n":
		err = s.Next()
	case "p":
		err = s.Prev()
	case "s":
		err = s.Submit(ctx, func() bool {
			fmt.Print("Submit your answers now? [y/N] ")
			answer, ok := <-lines
			return ok && strings.EqualFold(answer, "y")
		})
	default:
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Println("unknown command:", line)
			return false
		}
		err = s.Select(n - 1)
	}
	if err != nil && !errors.Is(err, taker.ErrNotConfirmed) {
		fmt.Println("error:", err)
	}
	return false
}

func render(snap taker.Snapshot) {
	switch snap.State {
	case taker.StateReady:
		fmt.Printf("%s (%d questions, %s)\n", snap.Test.Title, len(snap.Test.Questions), clock(snap.Remaining))
	case taker.StateInProgress:
		q := snap.Test.Questions[snap.Current]
		fmt.Printf("\n[%s] Question %d/%d: %s\n", clock(snap.Remaining), snap.Current+1, len(snap.Test.Questions), q.Text)
		for i, opt := range q.Options {
			mark := " "
			if chosen, ok := snap.Answers[snap.Current]; ok && chosen == i {
				mark = "x"
			}
			fmt.Printf("  [%s] %d. %s\n", mark, i+1, opt)
		}
		if snap.Err != nil {
			fmt.Println("submission failed, try again:", snap.Err)
		}
	case taker.StateExpired:
		if snap.Err != nil {
			fmt.Println("Time is up and the automatic submission failed:", snap.Err)
		} else {
			fmt.Println("Time is up, submitting your answers...")
		}
	case taker.StateSubmitting:
		fmt.Println("Submitting...")
	}
}

func report(snap taker.Snapshot) {
	if snap.Result == nil {
		return
	}
	r := snap.Result
	fmt.Printf("Score: %d/%d (%.0f%%)\n", r.Score, r.Total, scoring.Percent(r.Score, r.Total))
	if scoring.Qualifies(r.Score, r.Total) {
		fmt.Println("You passed. If the employer has scheduled an interview it will be accepted for you.")
	}
}

func clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
