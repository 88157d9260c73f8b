package count

// Bits of the fastq state machine, so tests can walk the cycle.
type FastqState = fastqState

const ExpectHeader = expectHeader

func Next(s FastqState) FastqState { return nextState[s] }
