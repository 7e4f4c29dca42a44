package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/dbsapi/dbsapi"
	main "github.com/dbsapi/dbsapi/cmd/dbsapi"
	"github.com/dbsapi/dbsapi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homeHTML = `<html><body>
<table style="text-decoration: none;">
  <tr><td><span id="r1_name1Label"> Asha Roy </span><span id="r1_Label3">VII</span><span id="r1_Label4">B</span></td></tr>
</table>
<div id="ctl00_cph123_DataList1">
  <a href="/notice-1.aspx"><span id="n1_topic1Label">Holiday</span></a>
</div>
<div id="ctl00_cph123_DataList4">
  <a href="http://cdn.example.com/r.pdf"><span id="c1_topic1Label">Quiz</span></a>
</div>
<table><tr><td style="background-color:#D62828"><span id="ctl00_cph123_Label1">42</span></td></tr></table>
</body></html>`

const eventsHTML = `<html><body>
<a href="/events-sports"><span>Sports Day</span></a>
<a href="/about.aspx">About</a>
</body></html>`

// newFetcher serves fixed pages and counts fetches.
func newFetcher(calls *atomic.Int32) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			calls.Add(1)
			switch url {
			case dbsapi.HomeURL:
				return homeHTML, nil
			case dbsapi.EventsURL:
				return eventsHTML, nil
			default:
				return `<img src="/imgs/events/a.jpg"><img src="/imgs/events/a.jpg">`, nil
			}
		},
		CloseFn: func() error { return nil },
	}
}

func run(t *testing.T, fetcher dbsapi.Fetcher, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()

	m := main.NewMain()
	m.Fetcher = fetcher

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err = m.Run(context.Background(), args, stdout, stderr)
	return stdout, stderr, err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments prints help and fails", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "serve")
		assert.Contains(t, stdout.String(), "scrape")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, nil, "--help")

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		_, _, err := run(t, newFetcher(&calls), "scrape", "birthdays", "--log-level=loud")

		require.Error(t, err)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("rejects unknown scrape target", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		_, _, err := run(t, newFetcher(&calls), "scrape", "teachers")

		require.Error(t, err)
		assert.Equal(t, int32(0), calls.Load())
	})
}

func TestScrapeCmd(t *testing.T) {
	t.Parallel()

	t.Run("birthdays prints tuples", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		stdout, _, err := run(t, newFetcher(&calls), "scrape", "birthdays")
		require.NoError(t, err)

		var got map[string][][3]string
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, [][3]string{{"Asha Roy", "VII", "B"}}, got["birthdays"])
	})

	t.Run("notices absolutizes relative hrefs", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		stdout, _, err := run(t, newFetcher(&calls), "scrape", "notices")
		require.NoError(t, err)

		var got map[string][]dbsapi.Link
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, []dbsapi.Link{{Title: "Holiday", URL: "http://donboscoberhampore.in/notice-1.aspx"}}, got["notices"])
	})

	t.Run("house points", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		stdout, _, err := run(t, newFetcher(&calls), "scrape", "house-points")
		require.NoError(t, err)
		assert.JSONEq(t, `{"housePoints":{"Red":42}}`, stdout.String())
	})

	t.Run("event images deduplicates", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		stdout, _, err := run(t, newFetcher(&calls), "scrape", "event-images", "http://donboscoberhampore.in/events-sports")
		require.NoError(t, err)
		assert.JSONEq(t, `{"images":["http://donboscoberhampore.in/imgs/events/a.jpg"]}`, stdout.String())
	})

	t.Run("event images without url fetches nothing", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		stdout, stderr, err := run(t, newFetcher(&calls), "scrape", "event-images")

		require.Error(t, err)
		assert.Equal(t, dbsapi.EINVALID, dbsapi.ErrorCode(err))
		assert.Contains(t, stderr.String(), "URL is required")
		assert.Empty(t, stdout.String())
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("all combines every page", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		stdout, _, err := run(t, newFetcher(&calls), "scrape", "all")
		require.NoError(t, err)

		var got struct {
			Birthdays          [][3]string        `json:"birthdays"`
			CompetitionResults []dbsapi.Link      `json:"competitionResults"`
			HousePoints        dbsapi.HousePoints `json:"housePoints"`
			Events             []dbsapi.Event     `json:"events"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Len(t, got.Birthdays, 1)
		assert.Equal(t, "http://cdn.example.com/r.pdf", got.CompetitionResults[0].URL)
		assert.Equal(t, 42, got.HousePoints[dbsapi.HouseRed])
		assert.Equal(t, []dbsapi.Event{{Title: "Sports Day", URL: "http://donboscoberhampore.in/events-sports"}}, got.Events)
		assert.Equal(t, int32(5), calls.Load())
	})

	t.Run("fetch failure is reported", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", dbsapi.Errorf(dbsapi.EFETCH, "connection refused")
			},
			CloseFn: func() error { return nil },
		}
		_, stderr, err := run(t, fetcher, "scrape", "events")

		require.Error(t, err)
		assert.Equal(t, dbsapi.EFETCH, dbsapi.ErrorCode(err))
		assert.Contains(t, stderr.String(), "connection refused")
	})

	t.Run("logs fetches as json", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		_, stderr, err := run(t, newFetcher(&calls), "--log-format=json", "--log-level=debug", "scrape", "events")
		require.NoError(t, err)

		var line map[string]any
		first, _, _ := bytes.Cut(stderr.Bytes(), []byte("\n"))
		require.NoError(t, json.Unmarshal(first, &line))
		assert.Equal(t, "fetch", line["msg"])
		assert.Equal(t, dbsapi.EventsURL, line["url"])
	})
}

func TestServeCmd(t *testing.T) {
	t.Parallel()

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		m := main.NewMain()
		m.Fetcher = newFetcher(&calls)

		stderr := &bytes.Buffer{}
		err := m.Run(ctx, []string{"serve", "--addr=127.0.0.1:0"}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "listening")
		assert.Contains(t, stderr.String(), "shutting down")
	})

	t.Run("reports bind failure", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		m := main.NewMain()
		m.Fetcher = newFetcher(&calls)

		err := m.Run(context.Background(), []string{"serve", "--addr=256.0.0.1:bad"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.False(t, errors.Is(err, context.Canceled))
	})
}
