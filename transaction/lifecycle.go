// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transaction

// State is a frozen transaction's lifecycle state
type State struct {
	Id   uint
	Name string
}

// NewState creates a new State
func NewState(id uint, name string) State {
	return State{
		Id:   id,
		Name: name,
	}
}

func (s State) String() string {
	return s.Name
}

var (
	// StateFrozen is the state directly after freezing: payloads are built
	// but carry no signatures yet
	StateFrozen = NewState(1, "Frozen")
	// StateSigned is the state after at least one signature was collected
	StateSigned = NewState(2, "Signed")
	// StateExecuted is the terminal state after a completed execution
	StateExecuted = NewState(3, "Executed")
)

const (
	operationSign     = "sign"
	operationExecute  = "execute"
	operationSchedule = "schedule"
)

type stateTransition struct {
	Operation string
	NewState  State
}

type stateMap map[State][]stateTransition

// Transitions allowed per lifecycle state. Operations not listed for the
// current state are rejected
var lifecycleStateMap = stateMap{
	StateFrozen: {
		{Operation: operationSign, NewState: StateSigned},
		{Operation: operationExecute, NewState: StateExecuted},
		{Operation: operationSchedule, NewState: StateFrozen},
	},
	StateSigned: {
		{Operation: operationSign, NewState: StateSigned},
		{Operation: operationExecute, NewState: StateExecuted},
		{Operation: operationSchedule, NewState: StateSigned},
	},
	StateExecuted: {},
}

// transitionTarget returns the state an operation leads to from the given
// state, or an error if the operation is not allowed
func transitionTarget(state State, operation string) (State, error) {
	for _, transition := range lifecycleStateMap[state] {
		if transition.Operation == operation {
			return transition.NewState, nil
		}
	}
	if state == StateExecuted {
		return State{}, ErrAlreadyExecuted
	}
	return State{}, StateError{
		Operation: operation,
		State:     state,
	}
}
