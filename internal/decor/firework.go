package decor

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Firework tuning, in pixels and ticks
const (
	BurstSize     = 50
	Gravity       = 0.1
	FadeStep      = 0.02
	MaxSparkSpeed = 3.0
	MinRiseSpeed  = 3.0
	RiseJitter    = 3.0
	RocketRadius  = 2.0
	SparkRadius   = 1.0
)

// Spark is one particle of a burst
type Spark struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
}

// Firework rises from the bottom of the screen and bursts into sparks
// once it reaches its target height
type Firework struct {
	X, Y    float64
	TargetY float64
	Speed   float64

	Color    color.NRGBA
	Exploded bool
	Sparks   []Spark

	rng Rand
}

// NewFirework launches a rocket from a random point on the bottom edge
func NewFirework(width, height int, rng Rand) *Firework {
	w, h := float64(width), float64(height)
	r, g, b := colorful.Hsl(rng.Float64()*360, 1, 0.5).Clamped().RGB255()
	return &Firework{
		X:       rng.Float64() * w,
		Y:       h,
		TargetY: rng.Float64() * h * 0.5,
		Speed:   MinRiseSpeed + rng.Float64()*RiseJitter,
		Color:   color.NRGBA{R: r, G: g, B: b, A: 255},
		rng:     rng,
	}
}

// Update moves the rocket up, or the sparks along their arcs
func (f *Firework) Update() {
	if !f.Exploded {
		f.Y -= f.Speed
		if f.Y <= f.TargetY {
			f.explode()
		}
		return
	}

	// integrate, fade, and drop spent sparks in place
	live := f.Sparks[:0]
	for _, s := range f.Sparks {
		s.X += s.VX
		s.Y += s.VY
		s.VY += Gravity
		s.Alpha -= FadeStep
		if s.Alpha > 0 {
			live = append(live, s)
		}
	}
	f.Sparks = live
}

func (f *Firework) explode() {
	f.Exploded = true
	f.Sparks = make([]Spark, 0, BurstSize)
	for i := 0; i < BurstSize; i++ {
		angle := f.rng.Float64() * math.Pi * 2
		speed := f.rng.Float64() * MaxSparkSpeed
		f.Sparks = append(f.Sparks, Spark{
			X:     f.X,
			Y:     f.Y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Alpha: 1,
		})
	}
}

// Draw paints the rocket, or every live spark at its own alpha
func (f *Firework) Draw(c Canvas) {
	if !f.Exploded {
		c.FillCircle(f.X, f.Y, RocketRadius, f.Color)
		return
	}
	for _, s := range f.Sparks {
		c.FillCircle(s.X, s.Y, SparkRadius, withAlpha(f.Color, s.Alpha))
	}
}

// Done reports whether the burst has fully faded
func (f *Firework) Done() bool {
	return f.Exploded && len(f.Sparks) == 0
}

// Fireworks is the firework backdrop: a black sky painted with a
// translucent overdraw so sparks leave trails, and a probabilistic launcher.
type Fireworks struct {
	width, height int

	// chance of a launch each time Spawn is called
	chance float64

	active []*Firework
	rng    Rand
}

// trail paint, black at 20% so the previous frames fade out gradually
var skyTrail = color.NRGBA{A: 51}

// NewFireworks creates an empty sky
func NewFireworks(width, height int, chance float64, rng Rand) *Fireworks {
	return &Fireworks{
		width:  width,
		height: height,
		chance: chance,
		rng:    rng,
	}
}

// Background dims the previous frame instead of clearing it
func (fs *Fireworks) Background(c Canvas) {
	w, h := c.Size()
	c.FillRect(0, 0, float64(w), float64(h), skyTrail)
}

// Spawn rolls the dice and maybe launches a firework
func (fs *Fireworks) Spawn() bool {
	if fs.rng.Float64() >= fs.chance {
		return false
	}
	fs.active = append(fs.active, NewFirework(fs.width, fs.height, fs.rng))
	return true
}

// Update advances every firework and drops the finished ones
func (fs *Fireworks) Update() {
	live := fs.active[:0]
	for _, f := range fs.active {
		f.Update()
		if !f.Done() {
			live = append(live, f)
		}
	}
	// let finished fireworks be collected
	for i := len(live); i < len(fs.active); i++ {
		fs.active[i] = nil
	}
	fs.active = live
}

// Draw paints every live firework
func (fs *Fireworks) Draw(c Canvas) {
	for _, f := range fs.active {
		f.Draw(c)
	}
}

// Resize changes where new rockets launch from; rockets in flight keep going
func (fs *Fireworks) Resize(width, height int) {
	fs.width, fs.height = width, height
}

// Len returns the number of fireworks in flight or fading
func (fs *Fireworks) Len() int {
	return len(fs.active)
}
