package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
)

// ErrInvalidFilter is returned (wrapped) for unparsable listing filters.
var ErrInvalidFilter = errors.New("invalid filter")

// StatusAll selects meetups regardless of status.
const StatusAll = "all"

const dateLayout = "2006-01-02"

// ParseFilter validates raw listing parameters. Empty values mean "no restriction".
// after and before accept a date (2006-01-02) or an RFC 3339 timestamp, read in loc.
// A date-only before covers the whole day.
func ParseFilter(status, after, before string, loc *time.Location) (models.MeetupFilter, error) {
	var f models.MeetupFilter

	switch s := strings.TrimSpace(status); s {
	case "", StatusAll:
	case string(models.MeetupScheduled), string(models.MeetupCanceled):
		f.Status = models.MeetupStatus(s)
	default:
		return f, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, status)
	}

	if after = strings.TrimSpace(after); after != "" {
		t, _, err := parseBound(after, loc)
		if err != nil {
			return f, fmt.Errorf("%w: after: %v", ErrInvalidFilter, err)
		}
		f.After = &t
	}

	if before = strings.TrimSpace(before); before != "" {
		t, dateOnly, err := parseBound(before, loc)
		if err != nil {
			return f, fmt.Errorf("%w: before: %v", ErrInvalidFilter, err)
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Second)
		}
		f.Before = &t
	}

	return f, nil
}

func parseBound(v string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dateLayout, v, loc); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("expected %s or RFC 3339, got %q", dateLayout, v)
	}
	return t, false, nil
}
