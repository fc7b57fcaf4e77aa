package gallery

import (
	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// track animates one float64 field from its value at start (or an explicit
// from value) to a target. Progress comes from a 0->1 gween tween so the
// easing curve is gween's while the written value keeps float64 precision.
type track struct {
	field    *float64
	from, to float64
	captured bool
	duration float32
	delay    float32
	tween    *gween.Tween
}

// Timeline is a paused-by-default group of tracks that all start at time 0
// and may each carry a delay. It can be played forward, reversed from its
// current position and cleared.
//
// There is no global animation manager: the owner calls Update(dt) every
// frame.
type Timeline struct {
	tracks   []track
	elapsed  float32
	playing  bool
	reversed bool
}

// NewTimeline returns an empty, paused timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// To adds a track that animates *field to value over duration seconds after
// delay seconds. The start value is read from *field the first time the
// track leaves its delay, so the animation always starts from wherever the
// field is at that moment.
func (tl *Timeline) To(field *float64, value float64, duration, delay float32, fn ease.TweenFunc) *Timeline {
	if field == nil {
		panic("gallery: timeline track on nil field")
	}
	tl.tracks = append(tl.tracks, track{
		field:    field,
		to:       value,
		duration: duration,
		delay:    delay,
		tween:    gween.New(0, 1, duration, fn),
	})
	return tl
}

// FromTo adds a track with an explicit start value.
func (tl *Timeline) FromTo(field *float64, from, to float64, duration, delay float32, fn ease.TweenFunc) *Timeline {
	tl.To(field, to, duration, delay, fn)
	t := &tl.tracks[len(tl.tracks)-1]
	t.from = from
	t.captured = true
	return tl
}

// Play resumes forward playback from the current position.
func (tl *Timeline) Play() {
	tl.playing = true
	tl.reversed = false
}

// Reverse resumes backward playback from the current position toward 0.
func (tl *Timeline) Reverse() {
	tl.playing = true
	tl.reversed = true
}

// Pause stops advancing without changing the position.
func (tl *Timeline) Pause() {
	tl.playing = false
}

// Clear removes every track and rewinds to 0. Fields keep their current
// values. The play state is preserved.
func (tl *Timeline) Clear() {
	tl.tracks = tl.tracks[:0]
	tl.elapsed = 0
}

// Playing reports whether Update advances the timeline.
func (tl *Timeline) Playing() bool {
	return tl.playing
}

// Reversed reports whether the timeline plays backward.
func (tl *Timeline) Reversed() bool {
	return tl.reversed
}

// Len returns the number of tracks.
func (tl *Timeline) Len() int {
	return len(tl.tracks)
}

// Elapsed returns the playhead position in seconds.
func (tl *Timeline) Elapsed() float32 {
	return tl.elapsed
}

// Duration returns the end time of the longest track including its delay.
func (tl *Timeline) Duration() float32 {
	var d float32
	for i := range tl.tracks {
		d = math32.Max(d, tl.tracks[i].delay+tl.tracks[i].duration)
	}
	return d
}

// Done reports whether the playhead sits at the end it is moving toward.
func (tl *Timeline) Done() bool {
	if tl.reversed {
		return tl.elapsed <= 0
	}
	return tl.elapsed >= tl.Duration()
}

// Update advances the playhead by dt seconds in the current direction and
// writes every track's value. It is a no-op while paused or empty.
func (tl *Timeline) Update(dt float32) {
	if !tl.playing || len(tl.tracks) == 0 {
		return
	}
	total := tl.Duration()
	if tl.reversed {
		if tl.elapsed <= 0 {
			return
		}
		tl.elapsed = math32.Max(0, tl.elapsed-dt)
	} else {
		if tl.elapsed >= total {
			return
		}
		tl.elapsed = math32.Min(total, tl.elapsed+dt)
	}

	// At the end every track lands exactly on its target, independent of
	// float32 rounding in delay+duration.
	atEnd := !tl.reversed && tl.elapsed >= total
	for i := range tl.tracks {
		tr := &tl.tracks[i]
		if atEnd {
			tr.capture()
			*tr.field = tr.to
			continue
		}
		tr.render(tl.elapsed)
	}
}

func (tr *track) capture() {
	if !tr.captured {
		tr.from = *tr.field
		tr.captured = true
	}
}

// render writes the track value for playhead position t.
func (tr *track) render(t float32) {
	local := t - tr.delay
	if local <= 0 {
		if tr.captured {
			*tr.field = tr.from
		}
		return
	}
	tr.capture()
	if local >= tr.duration {
		*tr.field = tr.to
		return
	}
	p, _ := tr.tween.Set(local)
	*tr.field = tr.from + (tr.to-tr.from)*float64(p)
}
