package alarm

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Wednesday.
var fixedNow = time.Date(2024, time.March, 13, 7, 30, 15, 500, time.UTC) //nolint:gochecknoglobals // Test fixture.

// panickingGetter fails on every lookup.
type panickingGetter struct{}

// Get always panics.
func (panickingGetter) Get(string) (any, bool) { panic("lookup failed") }

// TestNew_Defaults verifies every documented default for an empty configuration.
func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	a := newAt(Params{}, fixedNow)

	_, err := uuid.Parse(a.UID)
	require.NoError(t, err)
	require.True(t, a.Enabled)
	require.Equal(t, DefaultTitle, a.Title)
	require.Equal(t, DefaultDescription, a.Description)
	require.Equal(t, 7, a.Hour)
	require.Equal(t, 31, a.Minutes)
	require.Equal(t, DefaultSnoozeInterval, a.SnoozeInterval)
	require.False(t, a.Repeating)
	require.True(t, a.Active)
	require.Equal(t, []int{2}, a.Days)
}

// TestNew_SingleField checks that a supplied field wins and the rest default.
func TestNew_SingleField(t *testing.T) {
	t.Parallel()

	a := newAt(Params{KeyHour: 5}, fixedNow)
	b := newAt(Params{}, fixedNow)

	require.Equal(t, 5, a.Hour)

	a.Hour, a.UID = b.Hour, b.UID
	require.Equal(t, b, a)
}

// TestNew_UniqueIDs ensures default identifiers differ between alarms.
func TestNew_UniqueIDs(t *testing.T) {
	t.Parallel()

	require.NotEqual(t, New(nil).UID, New(nil).UID)
}

// TestNew_MinutesNoRollover keeps the default minute at 60 instead of rolling into the hour.
func TestNew_MinutesNoRollover(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 13, 7, 59, 0, 0, time.UTC)
	a := newAt(nil, now)

	require.Equal(t, 7, a.Hour)
	require.Equal(t, 60, a.Minutes)
	require.ErrorIs(t, a.Validate(), ErrMinutesOutOfRange)
}

// TestNew_LenientInputs verifies unreadable inputs fall back to defaults without panicking.
func TestNew_LenientInputs(t *testing.T) {
	t.Parallel()

	defaults := newAt(nil, fixedNow)

	inputs := map[string]any{
		"integer":          42,
		"string":           "not a config",
		"slice":            []int{1, 2},
		"panicking getter": panickingGetter{},
		"nil alarm":        (*Alarm)(nil),
	}

	for name, input := range inputs {
		require.NotPanics(t, func() {
			a := newAt(input, fixedNow)
			a.UID = defaults.UID
			require.Equal(t, defaults, a, name)
		}, name)
	}
}

// TestNew_NilAndMistypedValues treats nil and unusable values as absent.
func TestNew_NilAndMistypedValues(t *testing.T) {
	t.Parallel()

	a := newAt(Params{
		KeyTitle:   nil,
		KeyHour:    "soon",
		KeyEnabled: nil,
		KeyDays:    map[string]int{"monday": 1},
	}, fixedNow)

	require.Equal(t, DefaultTitle, a.Title)
	require.Equal(t, 7, a.Hour)
	require.True(t, a.Enabled)
	require.Equal(t, []int{2}, a.Days)
}

// TestNew_DecodedJSONValues accepts the float64 and []any shapes produced by JSON decoding.
func TestNew_DecodedJSONValues(t *testing.T) {
	t.Parallel()

	a := New(map[string]any{
		KeyUID:     "abc",
		KeyHour:    float64(6),
		KeyMinutes: float64(45),
		KeyDays:    []any{float64(0), float64(4)},
	})

	require.Equal(t, "abc", a.UID)
	require.Equal(t, 6, a.Hour)
	require.Equal(t, 45, a.Minutes)
	require.Equal(t, []int{0, 4}, a.Days)
}

// TestNew_CopiesDays ensures the alarm does not alias the caller's slice.
func TestNew_CopiesDays(t *testing.T) {
	t.Parallel()

	days := []int{1, 1, 3}
	a := New(Params{KeyDays: days})
	days[0] = 5

	require.Equal(t, []int{1, 1, 3}, a.Days)
}

// TestNew_FromAlarm copies an existing alarm.
func TestNew_FromAlarm(t *testing.T) {
	t.Parallel()

	src := New(Params{KeyTitle: "Gym", KeyDays: []int{0, 2}})
	a := New(src)

	require.Equal(t, src, a)
	require.NotSame(t, src, a)
}

// TestEmpty verifies the blank template.
func TestEmpty(t *testing.T) {
	t.Parallel()

	a := Empty()

	require.Empty(t, a.Title)
	require.Empty(t, a.Description)
	require.Zero(t, a.Hour)
	require.Zero(t, a.Minutes)
	require.False(t, a.Repeating)
	require.NotNil(t, a.Days)
	require.Empty(t, a.Days)
	require.True(t, a.Enabled)
	require.NotEmpty(t, a.UID)
}

// TestTimeString checks zero padding.
func TestTimeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, TimeString{Hour: "03", Minutes: "07"}, (&Alarm{Hour: 3, Minutes: 7}).TimeString())
	require.Equal(t, TimeString{Hour: "13", Minutes: "45"}, (&Alarm{Hour: 13, Minutes: 45}).TimeString())
	require.Equal(t, TimeString{Hour: "00", Minutes: "60"}, (&Alarm{Hour: 0, Minutes: 60}).TimeString())
}

// TestTime overwrites only hour and minutes of the current moment.
func TestTime(t *testing.T) {
	t.Parallel()

	got := (&Alarm{Hour: 22, Minutes: 5}).timeAt(fixedNow)

	require.Equal(t, time.Date(2024, time.March, 13, 22, 5, 15, 500, time.UTC), got)
	require.Equal(t, 22, New(Params{KeyHour: 22, KeyMinutes: 0}).Time().Hour())
}

// TestClone verifies days are deep-copied and nil is handled.
func TestClone(t *testing.T) {
	t.Parallel()

	require.Nil(t, (*Alarm)(nil).Clone())

	a := New(Params{KeyDays: []int{1}})
	b := a.Clone()
	b.Days[0] = 4

	require.Equal(t, []int{1}, a.Days)
}

// TestConfig covers both variants of the call-boundary union.
func TestConfig(t *testing.T) {
	t.Parallel()

	a := New(Params{KeyTitle: "Tea"})

	normalized := Normalized(a)
	require.True(t, normalized.IsNormalized())
	require.Same(t, a, normalized.Alarm())

	raw := Raw(Params{KeyTitle: "Tea"})
	require.False(t, raw.IsNormalized())
	require.Equal(t, "Tea", raw.Alarm().Title)

	require.Equal(t, DefaultTitle, Config{}.Alarm().Title)
}
