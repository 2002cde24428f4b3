package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/fyyurapp/fyyur/pkg/artists"
	"github.com/fyyurapp/fyyur/pkg/errcodes"
	"github.com/fyyurapp/fyyur/pkg/metrics"
	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/fyyurapp/fyyur/pkg/shows"
	"github.com/fyyurapp/fyyur/pkg/venues"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
)

const (
	entityVenue  = "Venue"
	entityArtist = "Artist"
	entityShow   = "Show"
)

// errMissingShowParty rejects a show whose artist or venue doesn't exist.
var errMissingShowParty = errcodes.ValidationError("Please make sure the Artist ID and the Venue ID exist.")

// Service runs every write as one transaction. Callers only ever see a
// NotFound, a validation rejection or a WriteFailed error.
type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

type command struct {
	entity    string
	operation string
	verb      string
	// name is read after the transaction ends, so commands that learn it
	// while running can fill it in.
	name string
}

func (svc *Service) run(ctx context.Context, cmd *command, fn func(ctx context.Context, tx bun.Tx) error) error {
	started := time.Now()
	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, fn)

	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errcodes.IsNotFound(err):
		outcome = metrics.OutcomeNotFound
	case errcodes.IsValidation(err):
		outcome = metrics.OutcomeRejected
	default:
		outcome = metrics.OutcomeFailed
		logger.FromContext(ctx).Err(err).Error("booking command failed", logger.Data{
			"entity":    cmd.entity,
			"operation": cmd.operation,
			"name":      cmd.name,
		})
		err = errcodes.WriteFailed(cmd.entity, cmd.name, cmd.verb)
	}

	metrics.ObserveCommand(cmd.entity, cmd.operation, outcome, started)
	return err
}

// CreateVenue lists a new venue tagged with the payload's genres. Unknown
// genre ids are ignored.
func (svc *Service) CreateVenue(ctx context.Context, payload *venues.VenuePayload) (*models.Venue, error) {
	venue := &models.Venue{}
	payload.Apply(venue)

	cmd := &command{entity: entityVenue, operation: "create", verb: "listed", name: payload.Name}
	err := svc.run(ctx, cmd, func(ctx context.Context, tx bun.Tx) error {
		return venues.NewService(tx).Create(ctx, venue, payload.Genres)
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// UpdateVenue replaces every editable field and the genre set of venue id.
func (svc *Service) UpdateVenue(ctx context.Context, id int, payload *venues.VenuePayload) (*models.Venue, error) {
	var venue *models.Venue

	cmd := &command{entity: entityVenue, operation: "update", verb: "updated", name: payload.Name}
	err := svc.run(ctx, cmd, func(ctx context.Context, tx bun.Tx) error {
		store := venues.NewService(tx)
		var err error
		venue, err = store.Retrieve(ctx, id)
		if err != nil {
			return err
		}
		payload.Apply(venue)
		return store.Update(ctx, venue, payload.Genres)
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// DeleteVenue removes venue id together with its shows and genre links.
func (svc *Service) DeleteVenue(ctx context.Context, id int) error {
	cmd := &command{entity: entityVenue, operation: "delete", verb: "deleted"}
	return svc.run(ctx, cmd, func(ctx context.Context, tx bun.Tx) error {
		store := venues.NewService(tx)
		venue, err := store.Retrieve(ctx, id)
		if err != nil {
			return err
		}
		cmd.name = venue.Name
		return store.Delete(ctx, id)
	})
}

func (svc *Service) CreateArtist(ctx context.Context, payload *artists.ArtistPayload) (*models.Artist, error) {
	artist := &models.Artist{}
	payload.Apply(artist)

	cmd := &command{entity: entityArtist, operation: "create", verb: "listed", name: payload.Name}
	err := svc.run(ctx, cmd, func(ctx context.Context, tx bun.Tx) error {
		return artists.NewService(tx).Create(ctx, artist, payload.Genres)
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (svc *Service) UpdateArtist(ctx context.Context, id int, payload *artists.ArtistPayload) (*models.Artist, error) {
	var artist *models.Artist

	cmd := &command{entity: entityArtist, operation: "update", verb: "updated", name: payload.Name}
	err := svc.run(ctx, cmd, func(ctx context.Context, tx bun.Tx) error {
		store := artists.NewService(tx)
		var err error
		artist, err = store.Retrieve(ctx, id)
		if err != nil {
			return err
		}
		payload.Apply(artist)
		return store.Update(ctx, artist, payload.Genres)
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (svc *Service) DeleteArtist(ctx context.Context, id int) error {
	cmd := &command{entity: entityArtist, operation: "delete", verb: "deleted"}
	return svc.run(ctx, cmd, func(ctx context.Context, tx bun.Tx) error {
		store := artists.NewService(tx)
		artist, err := store.Retrieve(ctx, id)
		if err != nil {
			return err
		}
		cmd.name = artist.Name
		return store.Delete(ctx, id)
	})
}

// CreateShow books an artist at a venue. Both must already exist; otherwise
// nothing is written and a validation error is returned.
func (svc *Service) CreateShow(ctx context.Context, payload *shows.ShowPayload) (*models.Show, error) {
	show, err := payload.Show()
	if err != nil {
		return nil, errcodes.ValidationError(err.Error())
	}

	cmd := &command{entity: entityShow, operation: "create", verb: "listed"}
	err = svc.run(ctx, cmd, func(ctx context.Context, tx bun.Tx) error {
		artistExists, err := artists.NewService(tx).Exists(ctx, show.ArtistID)
		if err != nil {
			return err
		}
		venueExists, err := venues.NewService(tx).Exists(ctx, show.VenueID)
		if err != nil {
			return err
		}
		if !artistExists || !venueExists {
			return errMissingShowParty
		}
		return shows.NewService(tx).Create(ctx, show)
	})
	if err != nil {
		return nil, err
	}
	return show, nil
}
