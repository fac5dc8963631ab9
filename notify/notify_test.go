package notify

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMulti(t *testing.T) {
	Convey("Given two recording sinks", t, func() {
		var first, second []Notice
		a := SinkFunc(func(n Notice) { first = append(first, n) })
		b := SinkFunc(func(n Notice) { second = append(second, n) })

		Convey("Multi delivers to each, skipping nil", func() {
			n := Notice{Title: "t", Description: "d", Severity: Destructive, Duration: 3 * time.Second}
			Multi(a, nil, b, Log, Discard).Deliver(n)
			So(first, ShouldResemble, []Notice{n})
			So(second, ShouldResemble, []Notice{n})
		})
	})
}

func TestSeverity(t *testing.T) {
	Convey("Severity names", t, func() {
		So(Info.String(), ShouldEqual, "info")
		So(Destructive.String(), ShouldEqual, "destructive")
	})
}
