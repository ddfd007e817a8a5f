package core

// Entity is an opaque identifier; 0 is never allocated
type Entity uint64

// EntityKind identifies what a spawn request produces
type EntityKind uint8

const (
	KindBall EntityKind = iota
	KindPaddle
	KindGoal
	KindBarrier
	KindWall
	KindCount
)

var kindNames = [KindCount]string{"ball", "paddle", "goal", "barrier", "wall"}

func (k EntityKind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}
