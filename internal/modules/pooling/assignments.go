// README: Assignment table mapping riding groups to their car.
package pooling

// assignmentTable tracks which car each in-progress group rides in. It has no
// lock of its own: the service's lock covers it, since every mutation is part
// of a compound engine operation.
type assignmentTable struct {
	byGroup map[int]int
}

func newAssignmentTable() *assignmentTable {
	return &assignmentTable{byGroup: make(map[int]int)}
}

func (t *assignmentTable) get(groupID int) (int, bool) {
	carID, ok := t.byGroup[groupID]
	return carID, ok
}

func (t *assignmentTable) set(groupID, carID int) {
	t.byGroup[groupID] = carID
}

func (t *assignmentTable) remove(groupID int) {
	delete(t.byGroup, groupID)
}

func (t *assignmentTable) clear() {
	t.byGroup = make(map[int]int)
}

func (t *assignmentTable) len() int {
	return len(t.byGroup)
}
