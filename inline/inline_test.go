package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/source"
)

const (
	driveURL = "https://drive.google.com/file/d/XYZ789/view"
	ytURL    = "https://youtu.be/dQw4w9WgXcQ"
	mp4URL   = "https://cdn.example.com/clip.mp4"
)

type scriptedSurface struct {
	signals []playback.Signal
}

func (s *scriptedSurface) Load(_ string, emit playback.Emit) error {
	for _, sig := range s.signals {
		emit(sig)
	}
	return nil
}

func (s *scriptedSurface) Play() error  { return nil }
func (s *scriptedSurface) Pause() error { return nil }
func (s *scriptedSurface) Close() error { return nil }

func scripted(signals ...playback.Signal) playback.SurfaceFactory {
	return playback.SurfaceFactoryFunc(func(source.Candidate) (playback.Surface, error) {
		return &scriptedSurface{signals: signals}, nil
	})
}

func TestClassify(t *testing.T) {
	Convey("Given several urls", t, func() {
		var buf bytes.Buffer
		options := &Options{Out: &buf, URLs: []string{driveURL, ytURL, mp4URL}, Json: true}

		Convey("When classified as json", func() {
			So(Classify(options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)

			Convey("Then every url is described with its candidates", func() {
				So(output.Result, ShouldHaveLength, 3)

				drive := output.Result[0]
				So(drive.Kind, ShouldEqual, "google-drive")
				So(drive.ProviderID, ShouldEqual, "XYZ789")
				So(drive.Candidates, ShouldHaveLength, 2)
				So(drive.Candidates[0].Mode, ShouldEqual, "native")
				So(drive.Candidates[1].Mode, ShouldEqual, "frame")

				So(output.Result[1].Kind, ShouldEqual, "youtube")
				So(output.Result[2].Kind, ShouldEqual, "direct")
				So(output.Result[2].Candidates[0].Address, ShouldEqual, mp4URL)
			})
		})

		Convey("When a kind filter is applied", func() {
			filter, err := ParseKindFilter("youtube, direct")
			So(err, ShouldBeNil)
			options.Filter = mo.Some(filter)

			So(Classify(options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 2)
		})

		Convey("When printed for humans", func() {
			options.Json = false
			So(Classify(options), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "google-drive")
			So(buf.String(), ShouldContainSubstring, "https://drive.google.com/file/d/XYZ789/preview")
		})
	})

	Convey("Given no urls", t, func() {
		So(errors.Is(Classify(&Options{}), ErrNoURL), ShouldBeTrue)
	})

	Convey("Given an invalid kind filter", t, func() {
		_, err := ParseKindFilter("vimeo")
		So(err, ShouldNotBeNil)

		_, err = ParseKindFilter(" , ")
		So(err, ShouldNotBeNil)
	})
}

func TestPlay(t *testing.T) {
	Convey("Given a source that fails on every candidate", t, func() {
		var buf bytes.Buffer
		options := &Options{
			Out:      &buf,
			URLs:     []string{mp4URL},
			Surfaces: scripted(playback.Signal{Kind: playback.SignalError, Err: errors.New("404")}),
		}

		d, outcome, err := Play(context.Background(), options)

		Convey("Then the remediation is printed and the error returned", func() {
			So(errors.Is(err, playback.ErrExhaustedStrategies), ShouldBeTrue)
			So(outcome, ShouldEqual, playback.Failed)
			So(d.Kind, ShouldEqual, source.Direct)
			So(buf.String(), ShouldContainSubstring, "Error loading video")
		})
	})

	Convey("Given a source whose player window is closed after playing", t, func() {
		var buf bytes.Buffer
		options := &Options{
			Out:  &buf,
			URLs: []string{mp4URL},
			Surfaces: scripted(
				playback.Signal{Kind: playback.SignalCanPlay},
				playback.Signal{Kind: playback.SignalPlay},
				playback.Signal{Kind: playback.SignalEnded},
			),
		}

		_, outcome, err := Play(context.Background(), options)

		Convey("Then Play returns without waiting for an interrupt", func() {
			So(err, ShouldBeNil)
			So(outcome, ShouldEqual, playback.Played)
		})
	})

	Convey("Given a source that plays", t, func() {
		var buf bytes.Buffer
		options := &Options{
			Out:  &buf,
			URLs: []string{mp4URL},
			Surfaces: scripted(
				playback.Signal{Kind: playback.SignalCanPlay},
				playback.Signal{Kind: playback.SignalTimeUpdate, CurrentTime: 50, Duration: 100},
			),
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, outcome, err := Play(ctx, options)

		Convey("Then progress is printed until the context ends", func() {
			So(err, ShouldBeNil)
			So(outcome, ShouldEqual, playback.Played)
			So(buf.String(), ShouldContainSubstring, "50.0%")
		})
	})
}
