// Package service implements the HomiMeet Connect services on top of storage.Store.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/wodomi/HomiMeet-FullApp/internal/auth"
	"github.com/wodomi/HomiMeet-FullApp/internal/middleware"
	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
)

// User-facing validation messages.
const (
	msgLocationNotSet  = "Location not set on the map. Please click the map."
	msgInvalidCoords   = "Invalid coordinates."
	msgNoInvitees      = "Please select at least one user to invite."
	msgUnknownAction   = "Unknown action."
	msgMissingCoords   = "missing coordinates"
	msgInvalidSchedule = "Invalid scheduled time."
	msgNotMeetupOwner  = "Not authorized: you do not own this meetup."
	defaultMeetupPlace = "Untitled Meetup"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks a request message against its validate tags.
func validateRequest(msg any) error {
	err := validate.Struct(msg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return invalidArgument(fe.Field(), fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
	}
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// invalidArgument builds an InvalidArgument error carrying a {field, message} detail
// that clients can show next to the offending input.
func invalidArgument(field, message string) *connect.Error {
	cerr := connect.NewError(connect.CodeInvalidArgument, errors.New(message))
	fields, err := structpb.NewStruct(map[string]any{
		"field":   field,
		"message": message,
	})
	if err != nil {
		return cerr
	}
	if detail, err := connect.NewErrorDetail(fields); err == nil {
		cerr.AddDetail(detail)
	}
	return cerr
}

// storageError maps storage failures onto Connect codes.
func storageError(err error) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// callerID returns the authenticated user's ID.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// requireOwner loads a meetup and checks that userID created it.
func requireOwner(ctx context.Context, store storage.MeetupStore, meetupID int64, userID string) (*models.Meetup, error) {
	meetup, err := store.GetMeetup(ctx, meetupID)
	if err != nil {
		return nil, storageError(err)
	}
	if meetup.CreatorID != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, errors.New(msgNotMeetupOwner))
	}
	return meetup, nil
}

// parseCoordinates validates the raw lat/lng strings sent by the map picker.
func parseCoordinates(lat, lng string) (*float64, *float64, error) {
	lat, lng = strings.TrimSpace(lat), strings.TrimSpace(lng)
	if lat == "" || lng == "" {
		return nil, nil, invalidArgument("lat", msgLocationNotSet)
	}

	latV, err := strconv.ParseFloat(lat, 64)
	if err != nil || !finite(latV) || latV < -90 || latV > 90 {
		return nil, nil, invalidArgument("lat", msgInvalidCoords)
	}
	lngV, err := strconv.ParseFloat(lng, 64)
	if err != nil || !finite(lngV) || lngV < -180 || lngV > 180 {
		return nil, nil, invalidArgument("lng", msgInvalidCoords)
	}
	return &latV, &lngV, nil
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// optionalCoordinates is parseCoordinates for forms where the pin may be left out.
func optionalCoordinates(lat, lng string) (*float64, *float64, error) {
	if strings.TrimSpace(lat) == "" && strings.TrimSpace(lng) == "" {
		return nil, nil, nil
	}
	return parseCoordinates(lat, lng)
}

// scheduleLayouts are the accepted scheduled_time formats, most specific first.
// The non-RFC 3339 layouts match datetime-local inputs and are read in server local time.
var scheduleLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseScheduledTime parses a scheduled time. Empty input yields the zero time.
func parseScheduledTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	for _, layout := range scheduleLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalidArgument("scheduled_time", msgInvalidSchedule)
}
