package entities

// ChangeSet is one unit of work against the order repository. Every engine
// mutation touches a single Instruction subtree, so a change set is scoped to
// InstructionID. Repositories must apply it atomically: every put and delete is
// visible, or none is.
type ChangeSet struct {
	InstructionID string

	Instruction *Instruction
	Processes   []Process
	Tasks       []Task

	DeleteInstruction bool
	DeletedProcessIDs []string
	DeletedTaskIDs    []string
}

// Len is the number of individual writes in the change set.
func (c ChangeSet) Len() int {
	n := len(c.Processes) + len(c.Tasks) + len(c.DeletedProcessIDs) + len(c.DeletedTaskIDs)
	if c.Instruction != nil {
		n++
	}
	if c.DeleteInstruction {
		n++
	}
	return n
}

func (c ChangeSet) IsEmpty() bool {
	return c.Len() == 0
}
