package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamfront/streamfront/constant"
)

func TestCommand(t *testing.T) {
	Convey("Command", t, func() {
		embed := "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&rel=0"

		Convey("Uses xdg-open or the named app on Linux", func() {
			cmd, err := Command(constant.Linux, embed, "")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", embed})

			cmd, err = Command(constant.Linux, embed, "firefox")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"firefox", embed})
		})

		Convey("Uses open -a on macOS", func() {
			cmd, err := Command(constant.Darwin, embed, "Safari")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", "-a", "Safari", embed})
		})

		Convey("Escapes ampersands for start on Windows", func() {
			cmd, err := Command(constant.Windows, embed, "chrome")
			So(err, ShouldBeNil)
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1^&rel=0")
		})

		Convey("Rejects unknown systems", func() {
			_, err := Command("plan9", embed, "")
			So(err, ShouldNotBeNil)
		})
	})
}
