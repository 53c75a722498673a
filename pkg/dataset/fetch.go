package dataset

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/model"
	"github.com/Melanie472/f1laps/pkg/openf1"
)

// Source is the remote side of a fetch. *openf1.Client implements it.
type Source interface {
	Sessions(ctx context.Context, q openf1.SessionQuery) ([]model.Session, error)
	Drivers(ctx context.Context) ([]model.Driver, error)
	Laps(ctx context.Context, sessionKey int) ([]model.Lap, error)
}

// Fetch loads the sessions matching q, the drivers of these sessions and
// the union of their laps. Any failing request aborts the fetch.
// The returned laps are raw (not normalized).
func Fetch(ctx context.Context, src Source, q Query) (*Dataset, error) {
	logger := log.GetFromContext(ctx).Named("dataset")
	sessions, err := src.Sessions(ctx, openf1.SessionQuery{
		SessionName: q.SessionName,
		Year:        q.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch sessions: %w", err)
	}
	drivers, err := src.Drivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch drivers: %w", err)
	}
	sessionKeys := lo.SliceToMap(sessions, func(s model.Session) (int, struct{}) {
		return s.SessionKey, struct{}{}
	})
	// the drivers endpoint is not filtered, keep the entries of our sessions only
	ownDrivers := lo.Filter(drivers, func(d model.Driver, _ int) bool {
		_, ok := sessionKeys[d.SessionKey]
		return ok
	})
	logger.Debug("drivers fetched",
		log.Int("total", len(drivers)),
		log.Int("kept", len(ownDrivers)))

	var laps []model.Lap
	for _, s := range sessions {
		sessionLaps, err := src.Laps(ctx, s.SessionKey)
		if err != nil {
			return nil, fmt.Errorf("fetch laps of session %d (%s): %w",
				s.SessionKey, s.Location, err)
		}
		logger.Debug("laps fetched",
			log.Int("sessionKey", s.SessionKey),
			log.String("location", s.Location),
			log.Int("laps", len(sessionLaps)))
		laps = append(laps, sessionLaps...)
	}
	return &Dataset{Sessions: sessions, Drivers: ownDrivers, Laps: laps}, nil
}

// Load fetches and normalizes a dataset. Validation findings are logged only.
func Load(ctx context.Context, src Source, q Query) (*Dataset, error) {
	logger := log.GetFromContext(ctx).Named("dataset")
	ds, err := Fetch(ctx, src, q)
	if err != nil {
		return nil, err
	}
	if err := ds.Normalize(); err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		logger.Warn("dataset has inconsistencies", log.ErrorField(err))
	}
	logger.Info("dataset loaded",
		log.Int("year", q.Year),
		log.String("sessionName", q.SessionName),
		log.Int("sessions", len(ds.Sessions)),
		log.Int("drivers", len(ds.Drivers)),
		log.Int("laps", len(ds.Laps)))
	return ds, nil
}
