package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fyyurapp/fyyur/pkg/config"
	"github.com/fyyurapp/fyyur/pkg/database"
	"github.com/fyyurapp/fyyur/pkg/genres"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

func main() {
	ctx := database.WithLogging(context.Background())
	log := logger.New()

	var opts struct {
		File   string `short:"f" long:"file" description:"A file with one genre name per line"`
		DryRun bool   `short:"n" long:"dry-run" description:"Print the names without writing them"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	names := args
	if opts.File != "" {
		fromFile, err := readNames(opts.File)
		if err != nil {
			log.Err(err).Fatal("genre file error")
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		fmt.Println("go run ./cmd/scripts/seed-genres [-f genres.txt] [name ...]")
		os.Exit(1)
	}

	if opts.DryRun {
		for _, name := range names {
			fmt.Println(strings.TrimSpace(name))
		}
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Err(err).Fatal("database error")
	}
	defer db.Close()

	svc := genres.NewService(db)
	for _, name := range names {
		genre, created, err := svc.FindOrCreateGenre(ctx, name)
		if err != nil {
			log.Err(err).Fatal("genre seed error")
		}
		log.Info("genre seeded", logger.Data{"id": genre.ID, "name": genre.Name, "created": created})
	}
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	names := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return names, nil
}
