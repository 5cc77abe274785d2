package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/grapplerank/internal/adapters/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given source locations", t, func() {
		_, isHTTP := source.New("https://example.test/a.csv").(*source.HTTPSource)
		So(isHTTP, ShouldBeTrue)
		_, isHTTP = source.New("http://example.test/a.csv").(*source.HTTPSource)
		So(isHTTP, ShouldBeTrue)
		_, isFile := source.New("data/a.csv").(*source.FileSource)
		So(isFile, ShouldBeTrue)
	})
}

func TestFileSource(t *testing.T) {
	Convey("Given a file on disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "roster.csv")
		So(os.WriteFile(path, []byte("Fighter\nAna\n"), 0o600), ShouldBeNil)

		Convey("Then Fetch returns its text", func() {
			text, err := source.NewFileSource(path).Fetch(context.Background())
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "Fighter\nAna\n")
		})

		Convey("Then a missing file is a fetch error", func() {
			_, err := source.NewFileSource(filepath.Join(dir, "nope.csv")).Fetch(context.Background())
			So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
		})

		Convey("Then an empty path reports no source", func() {
			_, err := source.NewFileSource("").Fetch(context.Background())
			So(errors.Is(err, source.ErrNoSource), ShouldBeTrue)
		})

		Convey("Then a cancelled context stops the read", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := source.NewFileSource(path).Fetch(ctx)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestHTTPSource(t *testing.T) {
	Convey("Given an HTTP server", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/missing.csv" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte("Year,Rank,Fighter,Elo\n"))
		}))
		defer srv.Close()

		Convey("Then Fetch returns the body", func() {
			text, err := source.NewHTTPSource(srv.URL+"/top3.csv", srv.Client()).Fetch(context.Background())
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "Year,Rank,Fighter,Elo\n")
		})

		Convey("Then a non-2xx status is an error", func() {
			_, err := source.NewHTTPSource(srv.URL+"/missing.csv", nil).Fetch(context.Background())
			So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
			So(errors.Is(err, source.ErrBadStatus), ShouldBeTrue)
		})

		Convey("Then an unreachable host is an error", func() {
			_, err := source.NewHTTPSource("http://127.0.0.1:0/x.csv", nil).Fetch(context.Background())
			So(errors.Is(err, source.ErrFetch), ShouldBeTrue)
		})
	})
}

func TestStatic(t *testing.T) {
	Convey("Given a static source", t, func() {
		text, err := source.Static{Text: "a", Name: "inline"}.Fetch(context.Background())
		So(err, ShouldBeNil)
		So(text, ShouldEqual, "a")

		boom := errors.New("boom")
		_, err = source.Static{Err: boom}.Fetch(context.Background())
		So(err, ShouldEqual, boom)
	})
}
