package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamfront/streamfront/config"
	"github.com/streamfront/streamfront/history"
	"github.com/streamfront/streamfront/key"
	"github.com/streamfront/streamfront/where"
)

func TestParseValue(t *testing.T) {
	Convey("Given registered fields", t, func() {
		Convey("Durations are validated", func() {
			v, err := parseValue(config.Default[key.PlaybackFallbackTimeout], []string{"12s"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "12s")

			_, err = parseValue(config.Default[key.PlaybackFallbackTimeout], []string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Plain strings are taken as is", func() {
			v, err := parseValue(config.Default[key.PlaybackNative], []string{"/usr/local/bin/mpv"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "/usr/local/bin/mpv")
		})

		Convey("Integers and booleans are parsed", func() {
			v, err := parseValue(config.Default[key.HistoryLimit], []string{"10"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 10)

			_, err = parseValue(config.Default[key.HistoryLimit], []string{"ten"})
			So(err, ShouldNotBeNil)

			v, err = parseValue(config.Default[key.NotifyToasts], []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("A value is required", func() {
			_, err := parseValue(config.Default[key.NotifyToasts], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestClosestKey(t *testing.T) {
	Convey("Misspelled keys resolve to the nearest registered key", t, func() {
		So(closestKey("playback.fallback_timeot"), ShouldEqual, key.PlaybackFallbackTimeout)
		So(closestKey("history.limt"), ShouldEqual, key.HistoryLimit)
	})
}

func TestFilterRecords(t *testing.T) {
	Convey("Given remembered links", t, func() {
		records := []*history.Record{
			{Title: "Lecture 3", URL: "https://drive.google.com/file/d/abc/view"},
			{Title: "", URL: "https://youtu.be/dQw4w9WgXcQ"},
		}

		Convey("An empty filter keeps everything", func() {
			So(filterRecords(records, ""), ShouldHaveLength, 2)
		})

		Convey("Titles and links are matched fuzzily", func() {
			So(filterRecords(records, "lect3"), ShouldHaveLength, 1)
			So(filterRecords(records, "youtu"), ShouldHaveLength, 1)
			So(filterRecords(records, "zzz"), ShouldHaveLength, 0)
		})
	})
}

func TestExposedEnv(t *testing.T) {
	Convey("Every registered key and the config path override are listed", t, func() {
		envs := exposedEnv()
		So(envs, ShouldContain, where.EnvConfigPath)
		So(envs, ShouldContain, "STREAMFRONT_PLAYBACK_FALLBACK_TIMEOUT")
		So(len(envs), ShouldEqual, len(config.EnvExposed)+1)
	})
}
