package policy

import "testing"

func TestHaltAsymmetry(t *testing.T) {
	// TimePassed and StepsRecorded use strict <.
	if (TimePassed{T: 5}).ShouldContinue(5, 0, 0) {
		t.Fatal("TimePassed should stop once timePassed reaches T")
	}
	if (StepsRecorded{S: 3}).ShouldContinue(0, 3, 0) {
		t.Fatal("StepsRecorded should stop once snapshotsRecorded reaches S")
	}

	// StepsTaken uses <=, permitting one event past budget.
	if !(StepsTaken{E: 3}).ShouldContinue(0, 0, 3) {
		t.Fatal("StepsTaken must continue when eventsTaken == E (asymmetric <=)")
	}
	if (StepsTaken{E: 3}).ShouldContinue(0, 0, 4) {
		t.Fatal("StepsTaken must stop once eventsTaken exceeds E")
	}
}

func TestStepsTakenZeroStillEntersOnce(t *testing.T) {
	if !(StepsTaken{E: 0}).ShouldContinue(0, 0, 0) {
		t.Fatal("StepsTaken{E:0} must allow the eventsTaken==0 check through")
	}
}

func TestFinalOnlyNeverRecords(t *testing.T) {
	r := FinalOnly{}
	if r.Contribution(100, 1, 5) != 0 {
		t.Fatal("FinalOnly must never contribute")
	}
}

func TestNthStep(t *testing.T) {
	r := NthStep{N: 3}
	for i := 1; i <= 9; i++ {
		want := 0
		if i%3 == 0 {
			want = 1
		}
		if got := r.Contribution(0, 0, i); got != want {
			t.Fatalf("Contribution(event %d) = %d, want %d", i, got, want)
		}
	}
}

func TestConstantTimeSingleCrossing(t *testing.T) {
	r := ConstantTime{Tau: 1.0}
	// time goes from 0.5 to 1.2: crosses exactly one grid line at t=1.0.
	got := r.Contribution(1.2, 0.7, 1)
	if got != 1 {
		t.Fatalf("Contribution = %d, want 1", got)
	}
}

func TestConstantTimeMultipleCrossings(t *testing.T) {
	r := ConstantTime{Tau: 1.0}
	// time goes from 0.1 to 5.3: crosses t=1,2,3,4,5 -> 5 crossings.
	got := r.Contribution(5.3, 5.2, 1)
	if got != 5 {
		t.Fatalf("Contribution = %d, want 5", got)
	}
}

func TestConstantTimeNoCrossing(t *testing.T) {
	r := ConstantTime{Tau: 1.0}
	got := r.Contribution(0.9, 0.4, 1)
	if got != 0 {
		t.Fatalf("Contribution = %d, want 0", got)
	}
}
