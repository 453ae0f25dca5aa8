package gamemath

// Approach moves v toward 1 when rising and toward 0 otherwise, at rate per
// second. The result is always in [0, 1].
func Approach(v float32, rising bool, rate, dt float32) float32 {
	if rising {
		return Clamp01(v + rate*dt)
	}
	return Clamp01(v - rate*dt)
}

// UpdatePreview advances the overview blend. While the countdown after a
// level load is running the blend is forced to min(countdown/2, 1) whatever
// the player holds, so each level opens on a short automatic overview.
func UpdatePreview(preview, countdown float32, held bool, rate, dt float32) (float32, float32) {
	preview = Approach(preview, held, rate, dt)
	if countdown > 0 {
		preview = Clamp01(countdown / 2)
		countdown -= dt
	}
	return preview, countdown
}
