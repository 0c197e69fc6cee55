// internal/sound/generator.go
package sound

import "math"

// SampleRate — частота дискретизации всего звукового слоя.
const SampleRate = 44100

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// sineTone generates raw sine samples for the given frequency.
func sineTone(freq float64, seconds float64) floatBuffer {
	samples := int(seconds * SampleRate)
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / SampleRate

	for i := 0; i < samples; i++ {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * SampleRate)
	releaseSamples := int(releaseSec * SampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// toPCM16 converts mono float samples to interleaved 16-bit stereo,
// little-endian, как того ждёт аудио-контекст ebiten.
func toPCM16(buf floatBuffer, gain float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, sample := range buf {
		v := sample * gain
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		s := int16(v * math.MaxInt16)
		lo := byte(s)
		hi := byte(s >> 8)
		out[i*4+0] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}

// renderTone синтезирует готовый PCM-фрагмент одного тона.
func renderTone(freq, seconds, attack, release, gain float64) []byte {
	buf := sineTone(freq, seconds)
	applyEnvelope(buf, attack, release)
	return toPCM16(buf, gain)
}

// renderSequence склеивает несколько тонов подряд (для джингла конца игры).
func renderSequence(tones ...[]byte) []byte {
	var out []byte
	for _, t := range tones {
		out = append(out, t...)
	}
	return out
}
