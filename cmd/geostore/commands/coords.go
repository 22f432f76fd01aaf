/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/geometry"
	"github.com/suparena/geostore/host"
)

type pointOutput struct {
	ID        int64              `json:"id" yaml:"id"`
	Lat       float64            `json:"lat" yaml:"lat"`
	Lng       float64            `json:"lng" yaml:"lng"`
	Store     string             `json:"store" yaml:"store"`
	State     string             `json:"state" yaml:"state"`
	Connected map[string][]int64 `json:"connected,omitempty" yaml:"connected,omitempty"`
}

func newCoordsCmd(a *app) *cobra.Command {
	var storeType string

	cmd := &cobra.Command{
		Use:   "coords",
		Short: "Manage coordinates geometries",
		Long: `Save, read, update and delete the point stored for a geometry id.

Examples:
  geostore coords save 42 45.5 -73.6
  geostore coords get 42 --json
  geostore coords update 42 45.6 -73.5 --store dynamodb
  geostore coords delete 42`,
	}
	cmd.PersistentFlags().StringVar(&storeType, "store", "", "store type (defaults to geometries.coordinates.store)")

	write := func(update bool) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			lat, lng, err := parsePoint(args[1], args[2])
			if err != nil {
				return err
			}
			c, err := a.coordinates(cmd.Context(), args[0], storeType)
			if err != nil {
				return err
			}
			var ok bool
			if update {
				ok, err = c.Update(cmd.Context(), c.Payload(lat, lng))
			} else {
				ok, err = c.Save(cmd.Context(), c.Payload(lat, lng))
			}
			if err != nil {
				return err
			}
			if !ok {
				return errors.Newf("store %s did not accept coordinates %d", c.StoreType(), c.ID())
			}
			return renderPoint(cmd, c, nil)
		}
	}

	save := &cobra.Command{
		Use:   "save <id> <lat> <lng>",
		Short: "Insert a point",
		Args:  cobra.ExactArgs(3),
		RunE:  write(false),
	}
	update := &cobra.Command{
		Use:   "update <id> <lat> <lng>",
		Short: "Insert or replace a point",
		Args:  cobra.ExactArgs(3),
		RunE:  write(true),
	}
	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a stored point and its relationships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.coordinates(cmd.Context(), args[0], storeType)
			if err != nil {
				return err
			}
			if c.State() != geometry.Persisted {
				return errors.NewNotFoundError(geometry.TypeCoordinates, args[0])
			}
			connected, err := c.Connected(cmd.Context())
			if err != nil {
				return err
			}
			return renderPoint(cmd, c, connected)
		},
	}
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.coordinates(cmd.Context(), args[0], storeType)
			if err != nil {
				return err
			}
			ok, err := c.Delete(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return errors.NewNotFoundError(geometry.TypeCoordinates, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted coordinates %d from %s\n", c.ID(), c.StoreType())
			return nil
		},
	}

	for _, sub := range []*cobra.Command{save, update, get} {
		addFormatFlags(sub)
	}
	cmd.AddCommand(save, update, get, del)
	return cmd
}

// coordinates binds a coordinates geometry to a synthetic published post.
// The creation date of an existing descriptor is kept.
func (a *app) coordinates(ctx context.Context, idArg, storeType string) (*geometry.Coordinates, error) {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.NewValidationError("id", "must be a positive integer")
	}
	b, err := a.open(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	post := &host.Post{ID: id, PostType: "post", Title: fmt.Sprintf("Geometry %d", id), Status: "publish", Date: now, Modified: now}
	if d, err := a.local.Descriptor(ctx, id); err != nil {
		return nil, err
	} else if d != nil {
		post.Date = time.Time(d.DateCreated)
	}

	opts := []geometry.Option{geometry.WithType(geometry.TypeCoordinates)}
	if storeType != "" {
		opts = append(opts, geometry.WithStoreType(storeType))
	}
	g, err := b.Geometry(ctx, host.ByPost(post), opts...)
	if err != nil {
		return nil, err
	}
	c, ok := g.(*geometry.Coordinates)
	if !ok {
		return nil, errors.Newf("geometry %d is a %T, not coordinates", id, g)
	}
	if c.Store() == nil {
		return nil, errors.NewValidationError("store", "no store configured for coordinates")
	}
	return c, nil
}

func parsePoint(latArg, lngArg string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latArg, 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, errors.NewValidationError("lat", "must be a number between -90 and 90")
	}
	lng, err := strconv.ParseFloat(lngArg, 64)
	if err != nil || lng < -180 || lng > 180 {
		return 0, 0, errors.NewValidationError("lng", "must be a number between -180 and 180")
	}
	return lat, lng, nil
}

func renderPoint(cmd *cobra.Command, c *geometry.Coordinates, connected map[string][]int64) error {
	out := pointOutput{
		ID:        c.ID(),
		Lat:       c.Lat,
		Lng:       c.Lng,
		Store:     c.StoreType(),
		State:     c.State().String(),
		Connected: connected,
	}
	if len(out.Connected) == 0 {
		out.Connected = nil
	}
	return render(cmd.OutOrStdout(), outputFormat(cmd), out, func(w io.Writer) error {
		fmt.Fprintf(w, "%d  %g,%g  (%s, %s)\n", out.ID, out.Lat, out.Lng, out.Store, out.State)
		for _, objectType := range slices.Sorted(maps.Keys(out.Connected)) {
			fmt.Fprintf(w, "  %s: %v\n", objectType, out.Connected[objectType])
		}
		return nil
	})
}
