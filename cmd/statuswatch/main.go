// statuswatch ждет финальный вердикт AI проверки лота и печатает промежуточные статусы.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/logger"
	"github.com/fsdevblog/groph-auction/internal/transport/statuspoll"
	"github.com/google/uuid"
)

func main() {
	var (
		rawID    string
		address  string
		interval time.Duration
		level    string
	)
	flag.StringVar(&rawID, "id", "", "listing id")
	flag.StringVar(&address, "a", "http://localhost:8080", "auction API base address")
	flag.DurationVar(&interval, "i", statuspoll.DefaultInterval, "poll interval")
	flag.StringVar(&level, "l", "info", "log level")
	flag.Parse()

	l := logger.New(os.Stderr, level)

	listingID, err := uuid.Parse(rawID)
	if err != nil {
		l.WithError(err).Fatal("invalid -id")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := statuspoll.New(statuspoll.NewHTTPClient(address), l).
		SetInterval(interval).
		OnUpdate(func(st domain.ListingStatus) {
			fmt.Fprintf(os.Stdout, "%s: %s\n", st.Status, st.Message)
		})

	result, err := poller.Wait(ctx, listingID)
	if err != nil {
		l.WithError(err).Error("wait for verdict")
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, "%s: %s\n", result.Status, result.Message)
	if result.Status != domain.AIStatusAccepted {
		os.Exit(2)
	}
}
