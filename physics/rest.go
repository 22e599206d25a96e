package physics

// RestDetector decides when a body has stopped long enough to be scored
// The height band is deliberately wider than strict contact to tolerate bounce residue
type RestDetector struct {
	SpeedThreshold float64
	HeightBand     float64
	SettleDuration float64
	FloorY         float64
}

// Update accumulates or clears the rest timer and returns the resting flag
func (d *RestDetector) Update(b *Body, dt float64) bool {
	if d.still(b) {
		b.RestTime += dt
		if b.RestTime > d.SettleDuration {
			b.Sleep()
		}
	} else {
		b.Wake()
	}
	return b.Resting
}

func (d *RestDetector) still(b *Body) bool {
	return b.Speed() < d.SpeedThreshold &&
		b.AngularSpeed() < d.SpeedThreshold &&
		b.Position.Y() <= d.FloorY+d.HeightBand
}
