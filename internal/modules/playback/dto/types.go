package dto

type StateOutput struct {
	CurrentTime float64
	Duration    float64
	IsPlaying   bool
	Epoch       uint64
}
