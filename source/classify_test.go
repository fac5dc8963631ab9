package source

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassifyDrive(t *testing.T) {
	Convey("Given Google Drive URLs", t, func() {
		Convey("A /file/d/ link yields a direct and a preview candidate", func() {
			d := Classify("https://drive.google.com/file/d/XYZ789/view")
			So(d.Kind, ShouldEqual, GoogleDrive)
			So(d.ProviderID.MustGet(), ShouldEqual, "XYZ789")
			So(d.Candidates, ShouldResemble, []Candidate{
				{Address: "https://drive.google.com/uc?id=XYZ789", Mode: Native},
				{Address: "https://drive.google.com/file/d/XYZ789/preview", Mode: Frame},
			})
			So(d.Err(), ShouldBeNil)
		})

		Convey("An open?id= link is recognised", func() {
			d := Classify("https://drive.google.com/open?id=abc_DEF-123")
			So(d.ProviderID.MustGet(), ShouldEqual, "abc_DEF-123")
		})

		Convey("A docs.google.com /d/ link is recognised", func() {
			d := Classify("https://docs.google.com/d/Q1w2E3/edit")
			So(d.Kind, ShouldEqual, GoogleDrive)
			So(d.ProviderID.MustGet(), ShouldEqual, "Q1w2E3")
		})

		Convey("/file/d/ wins over id= when both are present", func() {
			d := Classify("https://drive.google.com/file/d/FIRST/view?id=SECOND")
			So(d.ProviderID.MustGet(), ShouldEqual, "FIRST")
		})

		Convey("A link without an id falls back to the raw URL as a frame", func() {
			raw := "https://drive.google.com/drive/folders"
			d := Classify(raw)
			So(d.Kind, ShouldEqual, GoogleDrive)
			So(d.ProviderID.IsAbsent(), ShouldBeTrue)
			So(d.Candidates, ShouldResemble, []Candidate{{Address: raw, Mode: Frame}})
			So(errors.Is(d.Err(), ErrClassificationAmbiguous), ShouldBeTrue)
		})
	})
}

func TestClassifyYouTube(t *testing.T) {
	Convey("Given YouTube URLs", t, func() {
		embed := "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&rel=0&modestbranding=1&controls=0&showinfo=0&fs=1&iv_load_policy=3&disablekb=1"

		for _, raw := range []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://youtu.be/dQw4w9WgXcQ",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
			"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
			"https://www.youtube.com/shorts/dQw4w9WgXcQ",
			"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
		} {
			Convey(raw, func() {
				d := Classify(raw)
				So(d.Kind, ShouldEqual, YouTube)
				So(d.ProviderID.MustGet(), ShouldEqual, "dQw4w9WgXcQ")
				So(d.Candidates, ShouldResemble, []Candidate{{Address: embed, Mode: Frame}})
			})
		}

		Convey("An id that is not 11 characters long is Direct", func() {
			d := Classify("https://www.youtube.com/watch?v=short")
			So(d.Kind, ShouldEqual, Direct)
			So(d.Candidates[0].Address, ShouldEqual, "https://www.youtube.com/watch?v=short")
		})

		Convey("A watch pattern on another host is Direct", func() {
			d := Classify("https://example.com/watch?v=dQw4w9WgXcQ")
			So(d.Kind, ShouldEqual, Direct)
		})
	})
}

func TestClassifyOther(t *testing.T) {
	Convey("Given non YouTube, non Drive URLs", t, func() {
		Convey("archive.org becomes a single frame", func() {
			raw := "https://archive.org/details/xyz"
			d := Classify(raw)
			So(d.Kind, ShouldEqual, ArchiveOrg)
			So(d.ProviderID.IsAbsent(), ShouldBeTrue)
			So(d.Candidates, ShouldResemble, []Candidate{{Address: raw, Mode: Frame}})
		})

		Convey("A plain file is Direct", func() {
			raw := "https://cdn.example.com/clip.mp4"
			d := Classify(raw)
			So(d.Kind, ShouldEqual, Direct)
			So(d.Candidates, ShouldResemble, []Candidate{{Address: raw, Mode: Native}})
		})

		Convey("Empty input is Direct with the empty address", func() {
			d := Classify("")
			So(d.Kind, ShouldEqual, Direct)
			So(d.Candidates, ShouldHaveLength, 1)
			So(d.Candidates[0].Address, ShouldEqual, "")
		})

		Convey("Drive takes precedence over everything", func() {
			d := Classify("https://drive.google.com/file/d/ABC/view?from=youtube.com/watch?v=dQw4w9WgXcQ")
			So(d.Kind, ShouldEqual, GoogleDrive)
		})
	})
}

func TestClassifyProperties(t *testing.T) {
	Convey("For any input", t, func() {
		inputs := []string{
			"", " ", "not a url", "ftp://x", "https://drive.google.com/",
			"https://youtu.be/", "https://archive.org", "https://a.b/c.webm",
			"https://drive.google.com/uc?id=k", "https://youtu.be/dQw4w9WgXcQ#t=1",
		}

		Convey("Classify is total, deterministic and never returns zero candidates", func() {
			for _, in := range inputs {
				first := Classify(in)
				So(first.Candidates, ShouldNotBeEmpty)
				So(Classify(in), ShouldResemble, first)
				So(first.RawURL, ShouldEqual, in)
			}
		})

		Convey("Drive descriptors with an id always have exactly two candidates", func() {
			for _, in := range inputs {
				d := Classify(in)
				if d.Kind == GoogleDrive && d.ProviderID.IsPresent() {
					So(d.Candidates, ShouldHaveLength, 2)
					So(d.Candidates[0].Mode, ShouldEqual, Native)
					So(d.Candidates[1].Mode, ShouldEqual, Frame)
				}
			}
		})
	})
}

func TestDescriptor(t *testing.T) {
	Convey("Given a Drive descriptor", t, func() {
		d := Classify("https://drive.google.com/file/d/XYZ789/view")

		Convey("Candidate() bounds-checks", func() {
			c, ok := d.Candidate(1)
			So(ok, ShouldBeTrue)
			So(c.Mode, ShouldEqual, Frame)
			_, ok = d.Candidate(2)
			So(ok, ShouldBeFalse)
			_, ok = d.Candidate(-1)
			So(ok, ShouldBeFalse)
		})

		Convey("HasNext() is true only before the last candidate", func() {
			So(d.HasNext(0), ShouldBeTrue)
			So(d.HasNext(1), ShouldBeFalse)
		})
	})
}

func TestKind(t *testing.T) {
	Convey("Kind text round-trips", t, func() {
		for _, k := range Kinds() {
			text, err := k.MarshalText()
			So(err, ShouldBeNil)

			var back Kind
			So(back.UnmarshalText(text), ShouldBeNil)
			So(back, ShouldEqual, k)
		}

		var k Kind
		So(k.UnmarshalText([]byte("vimeo")), ShouldNotBeNil)
	})
}
