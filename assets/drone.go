package assets

import (
	"encoding/binary"
	"math"
)

const (
	bytesPerFrame = 4 // 16-bit stereo
	droneGain     = 0.25
)

// droneVoices are the partials of the drone: frequency in Hz and weight.
var droneVoices = [...]struct{ freq, weight float64 }{
	{55, 0.5},
	{82.5, 0.3},
	{110.3, 0.15},
	{164.8, 0.05},
}

// Drone is an endless low hum with a slow swell, produced as signed 16-bit
// little-endian stereo PCM.
type Drone struct {
	sampleRate int
	frame      int64
	// pending holds the bytes of a frame split across Read calls.
	pending []byte
}

func NewDrone(sampleRate int) *Drone {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	return &Drone{sampleRate: sampleRate}
}

// Sample returns the left and right sample for a frame index, in [-1,1].
func (d *Drone) Sample(frame int64) (float64, float64) {
	t := float64(frame) / float64(d.sampleRate)
	v := 0.0
	for _, voice := range droneVoices {
		v += voice.weight * math.Sin(2*math.Pi*voice.freq*t)
	}
	swell := 0.7 + 0.3*math.Sin(2*math.Pi*0.08*t)
	pan := 0.15 * math.Sin(2*math.Pi*0.05*t)
	v *= droneGain * swell
	return v * (1 - pan), v * (1 + pan)
}

func (d *Drone) Read(p []byte) (int, error) {
	n := copy(p, d.pending)
	d.pending = d.pending[n:]

	var buf [bytesPerFrame]byte
	for n < len(p) {
		l, r := d.Sample(d.frame)
		d.frame++
		binary.LittleEndian.PutUint16(buf[0:], uint16(toPCM(l)))
		binary.LittleEndian.PutUint16(buf[2:], uint16(toPCM(r)))
		c := copy(p[n:], buf[:])
		n += c
		if c < bytesPerFrame {
			d.pending = append(d.pending[:0], buf[c:]...)
		}
	}
	return n, nil
}

func toPCM(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
