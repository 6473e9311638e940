package csrdepot

// AddEmptyTopTree pushes a new, unmarked (mutable) CSR sized for nnodes
// nodes, with zero edges. The caller is expected to fill Head/Cost and the
// running Start prefix via GetEmptyTop, then call EmptyTopSetMarked once
// the MST on it is complete.
func (d *Depot) AddEmptyTopTree(nnodes int) {
	if nnodes < 1 {
		panic(ErrInvalidNodeCount.Error())
	}
	d.csrs = append(d.csrs, &CSR{
		NNodes: nnodes,
		Start:  make([]int, nnodes+1),
		Head:   make([]int, 0, 2*(nnodes-1)),
		Cost:   make([]float64, 0, 2*(nnodes-1)),
	})
}

// GetEmptyTop returns the mutable top CSR. Panics if the depot is empty or
// the top CSR has already been marked (sealed) via EmptyTopSetMarked.
func (d *Depot) GetEmptyTop() *CSR {
	top := d.peek()
	if top == nil {
		panic(ErrEmptyDepot.Error())
	}
	if top.marked {
		panic(ErrNotMutable.Error())
	}

	return top
}

// EmptyTopSetMarked seals the top CSR: it is no longer the mutable "empty"
// top, though it remains addressable via GetTop.
func (d *Depot) EmptyTopSetMarked() {
	top := d.peek()
	if top == nil {
		panic(ErrEmptyDepot.Error())
	}
	top.marked = true
}

// RemoveTop discards the top CSR.
func (d *Depot) RemoveTop() {
	if len(d.csrs) == 0 {
		panic(ErrEmptyDepot.Error())
	}
	d.csrs = d.csrs[:len(d.csrs)-1]
}

// GetTop returns the top CSR for read-only use by convention.
func (d *Depot) GetTop() *CSR {
	top := d.peek()
	if top == nil {
		panic(ErrEmptyDepot.Error())
	}

	return top
}

// IsEmpty reports whether the depot holds no CSRs.
func (d *Depot) IsEmpty() bool {
	return len(d.csrs) == 0
}

// NCSRs returns the number of CSRs currently on the stack.
func (d *Depot) NCSRs() int {
	return len(d.csrs)
}

func (d *Depot) peek() *CSR {
	if len(d.csrs) == 0 {
		return nil
	}

	return d.csrs[len(d.csrs)-1]
}
