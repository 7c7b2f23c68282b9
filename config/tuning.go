package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
)

// tuning is the on-disk layout of a tuning override file. Tables that are
// missing from the file keep their current values.
type tuning struct {
	Flight FlightConfig `toml:"flight"`
	Flap   FlapConfig   `toml:"flap"`
	Track  TrackConfig  `toml:"track"`
	Ring   RingConfig   `toml:"ring"`
}

// LoadTuning overrides the gameplay configs with values from a TOML file.
// Nothing is applied when the file fails to parse or validate.
func LoadTuning(path string) error {
	t := tuning{Flight: Flight, Flap: Flap, Track: Track, Ring: Ring}
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return fmt.Errorf("decode tuning %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("Warning: Unknown tuning key %q in %s", key.String(), path)
	}
	if err := t.validate(); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}

	Flight = t.Flight
	Flap = t.Flap
	Track = t.Track
	Ring = t.Ring
	return nil
}

func (t *tuning) validate() error {
	var errs []error
	if t.Flight.FullAngle <= t.Flight.GlideAngle {
		errs = append(errs, errors.New("flight.full_angle must be greater than flight.glide_angle"))
	}
	if t.Flap.StrokeDistance <= t.Flap.CancelDistance || t.Flap.CancelDistance < 0 {
		errs = append(errs, errors.New("flap.stroke_distance must be greater than flap.cancel_distance >= 0"))
	}
	if t.Flap.FlapsToStart < 1 {
		errs = append(errs, errors.New("flap.flaps_to_start must be at least 1"))
	}
	if t.Ring.Interval <= 0 {
		errs = append(errs, errors.New("ring.interval must be positive"))
	}
	if t.Ring.StartingScale <= 0 {
		errs = append(errs, errors.New("ring.starting_scale must be positive"))
	}
	if t.Ring.Shrink <= 0 || t.Ring.Shrink > 1 {
		errs = append(errs, errors.New("ring.shrink must be in (0, 1]"))
	}
	if t.Ring.HeightRange < 0 {
		errs = append(errs, errors.New("ring.height_range must not be negative"))
	}
	return errors.Join(errs...)
}
