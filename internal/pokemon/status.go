package pokemon

// Status packs the party status condition (record uint32 @80).
//
// Bits: sleep turns 0-2, poisoned 3, burnt 4, frozen 5, paralyzed 6, badly poisoned 7.
type Status uint32

// StatusFlag is the bit position of a single-bit status condition.
type StatusFlag uint

const (
	StatusPoisoned    StatusFlag = 3
	StatusBurnt       StatusFlag = 4
	StatusFrozen      StatusFlag = 5
	StatusParalyzed   StatusFlag = 6
	StatusBadPoisoned StatusFlag = 7
)

func (s Status) SleepTurns() uint8 { return uint8(field(uint32(s), 0, 3)) }

func (s Status) WithSleepTurns(n uint8) Status {
	return Status(setField(uint32(s), 0, 3, uint32(n)))
}

func (s Status) Has(f StatusFlag) bool { return flag(uint32(s), uint(f)) }

func (s Status) With(f StatusFlag, on bool) Status {
	return Status(setFlag(uint32(s), uint(f), on))
}
