package seed

import (
	"github.com/carterbs/brad-os-sub006/internal/model"
	"github.com/carterbs/brad-os-sub006/internal/repository"
)

// StarterDocs is the built-in library: a base set of lifting exercises and
// the daily stretch routines. Collections that accumulate through use
// (workouts, sets, meal plans, rides) start empty.
func StarterDocs() []Doc {
	docs := make([]Doc, 0, len(starterExercises)+len(starterRoutines))
	for _, e := range starterExercises {
		docs = append(docs, Doc{Collection: repository.CollectionExercises, Data: e})
	}
	for _, r := range starterRoutines {
		docs = append(docs, Doc{Collection: repository.CollectionStretchRoutines, Data: r})
	}
	return docs
}

func exerciseDoc(name, group string, equipment any, low, high, increment float64) map[string]any {
	return map[string]any{
		"name":            name,
		"muscleGroup":     group,
		"equipment":       equipment,
		"repRange":        []float64{low, high},
		"weightIncrement": increment,
		"notes":           nil,
	}
}

var starterExercises = []map[string]any{
	exerciseDoc("Barbell Back Squat", model.MuscleLegs, "barbell", 3, 8, 2.5),
	exerciseDoc("Romanian Deadlift", model.MuscleLegs, "barbell", 6, 10, 2.5),
	exerciseDoc("Leg Press", model.MuscleLegs, "machine", 8, 15, 5),
	exerciseDoc("Barbell Bench Press", model.MuscleChest, "barbell", 5, 8, 2.5),
	exerciseDoc("Incline Dumbbell Press", model.MuscleChest, "dumbbell", 8, 12, 1),
	exerciseDoc("Pull-Up", model.MuscleBack, nil, 5, 12, model.DefaultWeightIncrement),
	exerciseDoc("Barbell Row", model.MuscleBack, "barbell", 6, 10, 2.5),
	exerciseDoc("Overhead Press", model.MuscleShoulders, "barbell", 5, 8, 1.25),
	exerciseDoc("Lateral Raise", model.MuscleShoulders, "dumbbell", 12, 20, 1),
	exerciseDoc("Barbell Curl", model.MuscleArms, "barbell", 8, 12, 1.25),
	exerciseDoc("Triceps Pushdown", model.MuscleArms, "cable", 10, 15, 2.5),
	exerciseDoc("Hanging Leg Raise", model.MuscleCore, nil, 8, 15, model.DefaultWeightIncrement),
	exerciseDoc("Cable Crunch", model.MuscleCore, "cable", 10, 15, 2.5),
}

func stretchEntry(name string, holdSeconds int, side string) map[string]any {
	return map[string]any{
		"name":        name,
		"holdSeconds": holdSeconds,
		"side":        side,
	}
}

var starterRoutines = []map[string]any{
	{
		"name": "Morning wake-up",
		"slot": model.SlotMorning,
		"stretches": []map[string]any{
			stretchEntry("Cat-cow", 45, model.SideBoth),
			stretchEntry("Downward dog", 60, model.SideBoth),
			stretchEntry("Standing quad stretch", 30, model.SideLeft),
			stretchEntry("Standing quad stretch", 30, model.SideRight),
		},
	},
	{
		"name": "Evening wind-down",
		"slot": model.SlotEvening,
		"stretches": []map[string]any{
			stretchEntry("Child's pose", 90, model.SideBoth),
			stretchEntry("Supine twist", 60, model.SideLeft),
			stretchEntry("Supine twist", 60, model.SideRight),
			stretchEntry("Happy baby", 60, model.SideBoth),
		},
	},
	{
		"name": "Lower-body cooldown",
		"slot": model.SlotPostWorkout,
		"stretches": []map[string]any{
			stretchEntry("Couch stretch", 60, model.SideLeft),
			stretchEntry("Couch stretch", 60, model.SideRight),
			stretchEntry("Pigeon pose", 60, model.SideLeft),
			stretchEntry("Pigeon pose", 60, model.SideRight),
			stretchEntry("Standing forward fold", 45, model.SideBoth),
		},
	},
}
