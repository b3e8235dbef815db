package file

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/command"
	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
	"task-assistant/pkg/datemath"
)

func newTestCodec(t *testing.T) Codec {
	t.Helper()
	n, err := datemath.NewNormalizer("UTC")
	require.NoError(t, err)
	return NewCodec(n)
}

func TestCodec_MarshalFormat(t *testing.T) {
	c := newTestCodec(t)
	n, _ := datemath.NewNormalizer("UTC")
	date, err := n.NormalizeDate("2/12/2023")
	require.NoError(t, err)

	done := model.NewToDo("read book")
	done.MarkDone()
	tasks := model.NewCollection(
		done,
		model.NewDeadline("submit report", model.Schedule{Text: "2/12/2023 6pm", Date: &date, Time: "6pm"}),
		model.NewEvent("party", model.Schedule{Text: "Sat night"}),
		model.NewTask("buy milk"),
	)

	want := "T ~ Yes ~ read book\n" +
		"D ~ No ~ submit report ~ 2023-12-02 6pm\n" +
		"E ~ No ~ party ~ Sat night\n" +
		"No ~ buy milk\n"
	assert.Equal(t, want, string(c.Marshal(tasks)))
}

func TestCodec_RoundTripIsByteIdentical(t *testing.T) {
	c := newTestCodec(t)
	data := []byte("T ~ Yes ~ read book\n" +
		"D ~ No ~ submit report ~ 2023-12-02 6pm\n" +
		"E ~ Yes ~ party ~ Sat night\n" +
		"No ~ buy milk\n" +
		"Yes ~ call mum\n" +
		"T ~ No ~ a ~ b with separator\n" +
		"D ~ No ~ x ~ y ~ Sunday\n")

	first, errs := c.Unmarshal(data)
	require.Empty(t, errs)
	encoded := c.Marshal(first)
	assert.Equal(t, string(data), string(encoded))

	second, errs := c.Unmarshal(encoded)
	require.Empty(t, errs)
	assert.Equal(t, encoded, c.Marshal(second))
}

func TestCodec_UnmarshalRestoresVariants(t *testing.T) {
	c := newTestCodec(t)

	tasks, errs := c.Unmarshal([]byte("D ~ Yes ~ submit report ~ 2023-12-02 6pm\nE ~ No ~ party ~ Sat night\n"))
	require.Empty(t, errs)
	require.Equal(t, 2, tasks.Size())

	deadline, _ := tasks.Get(0)
	assert.Equal(t, model.KindDeadline, deadline.Kind)
	assert.True(t, deadline.IsDone())
	require.True(t, deadline.When.HasDate())
	assert.Equal(t, "2023-12-02", deadline.When.Date.Format(model.DateLayout))
	assert.Equal(t, "6pm", deadline.When.Time)

	event, _ := tasks.Get(1)
	assert.Equal(t, model.KindEvent, event.Kind)
	assert.False(t, event.When.HasDate())
	assert.Equal(t, "[E][ ] party (at: Sat night)", event.String())
}

func TestCodec_UnmarshalSkipsBadLines(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{name: "unknown kind", line: "X ~ No ~ mystery", wantErr: repository.ErrUnknownKind},
		{name: "todo too short", line: "T ~ No", wantErr: repository.ErrMalformedLine},
		{name: "deadline without info", line: "D ~ No ~ report", wantErr: repository.ErrMalformedLine},
		{name: "bad done flag", line: "T ~ Maybe ~ read", wantErr: repository.ErrMalformedLine},
		{name: "no separator", line: "garbage", wantErr: repository.ErrUnknownKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCodec(t)
			data := []byte("T ~ No ~ first\n" + tc.line + "\n\nNo ~ last\n")

			tasks, errs := c.Unmarshal(data)
			assert.Equal(t, 2, tasks.Size())
			require.Len(t, errs, 1)
			assert.Equal(t, 2, errs[0].Line)
			assert.True(t, errors.Is(errs[0], tc.wantErr), "got %v", errs[0])
		})
	}
}

func TestCodec_UnmarshalEmpty(t *testing.T) {
	c := newTestCodec(t)

	tasks, errs := c.Unmarshal(nil)
	assert.Empty(t, errs)
	assert.Zero(t, tasks.Size())
}

func TestCodec_UnmarshalOversizedLine(t *testing.T) {
	c := newTestCodec(t)
	tasks := model.NewCollection(
		model.NewToDo("first"),
		model.NewToDo(strings.Repeat("x", 2<<20)),
		model.NewToDo("third"),
	)

	loaded, errs := c.Unmarshal(c.Marshal(tasks))
	require.Empty(t, errs)
	require.Equal(t, 3, loaded.Size())

	last, err := loaded.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "third", last.Description)
}

func TestCodec_ReloadMatchesAcceptedCommands(t *testing.T) {
	n, err := datemath.NewNormalizer("UTC")
	require.NoError(t, err)
	c := NewCodec(n)
	p := command.New(n)

	inputs := []string{
		"todo read ~/notes",
		"deadline submit report /by 2/12/2023 1800",
		"event party /at Sat night",
		"buy milk",
		"todo buy milk\nD ~ Yes ~ injected ~ x",
		"deadline foo /by x ~ y",
		"event gig ~ /at Friday",
	}
	tasks := model.NewCollection()
	for _, in := range inputs {
		_, _ = p.Process(in, tasks)
	}
	require.Equal(t, 4, tasks.Size())

	loaded, errs := c.Unmarshal(c.Marshal(tasks))
	require.Empty(t, errs)
	require.Equal(t, tasks.Size(), loaded.Size())
	for i, want := range tasks.All() {
		got, err := loaded.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want.String(), got.String())
	}
}
