package services

import "github.com/mrankit10-code/FitSphereAI/internal/models"

// exerciseCatalog maps difficulty and venue to an ordered list of
// prescriptions. List order is inclusion priority: when the available time
// only allows a subset, the assembler always takes a prefix.
var exerciseCatalog = map[string]map[string][]models.Exercise{
	"beginner": {
		"home": {
			{Name: "Push-ups", Sets: 3, Reps: 10, RestSeconds: 60},
			{Name: "Bodyweight Squats", Sets: 3, Reps: 15, RestSeconds: 60},
			{Name: "Plank", Sets: 3, Reps: 30, RestSeconds: 60},
			{Name: "Jumping Jacks", Sets: 3, Reps: 20, RestSeconds: 45},
			{Name: "Lunges", Sets: 3, Reps: 10, RestSeconds: 60},
			{Name: "Mountain Climbers", Sets: 3, Reps: 15, RestSeconds: 60},
			{Name: "Burpees", Sets: 2, Reps: 8, RestSeconds: 90},
			{Name: "High Knees", Sets: 3, Reps: 20, RestSeconds: 45},
		},
		"gym": {
			{Name: "Bench Press", Sets: 3, Reps: 10, RestSeconds: 90},
			{Name: "Squats", Sets: 3, Reps: 12, RestSeconds: 90},
			{Name: "Deadlifts", Sets: 3, Reps: 8, RestSeconds: 120},
			{Name: "Shoulder Press", Sets: 3, Reps: 10, RestSeconds: 90},
			{Name: "Lat Pulldown", Sets: 3, Reps: 12, RestSeconds: 90},
			{Name: "Leg Press", Sets: 3, Reps: 15, RestSeconds: 90},
		},
	},
	"intermediate": {
		"home": {
			{Name: "Push-ups", Sets: 4, Reps: 15, RestSeconds: 45},
			{Name: "Pistol Squats", Sets: 3, Reps: 8, RestSeconds: 90},
			{Name: "Plank", Sets: 4, Reps: 60, RestSeconds: 45},
			{Name: "Burpees", Sets: 4, Reps: 12, RestSeconds: 60},
			{Name: "Diamond Push-ups", Sets: 3, Reps: 12, RestSeconds: 60},
			{Name: "Jump Squats", Sets: 3, Reps: 15, RestSeconds: 60},
			{Name: "Pike Push-ups", Sets: 3, Reps: 10, RestSeconds: 60},
		},
		"gym": {
			{Name: "Bench Press", Sets: 4, Reps: 12, RestSeconds: 75},
			{Name: "Squats", Sets: 4, Reps: 15, RestSeconds: 75},
			{Name: "Deadlifts", Sets: 4, Reps: 10, RestSeconds: 120},
			{Name: "Overhead Press", Sets: 4, Reps: 12, RestSeconds: 75},
			{Name: "Pull-ups", Sets: 3, Reps: 10, RestSeconds: 90},
			{Name: "Barbell Rows", Sets: 4, Reps: 12, RestSeconds: 75},
		},
	},
	"advanced": {
		"home": {
			{Name: "One-Arm Push-ups", Sets: 3, Reps: 8, RestSeconds: 90},
			{Name: "Pistol Squats", Sets: 4, Reps: 12, RestSeconds: 60},
			{Name: "Handstand Push-ups", Sets: 3, Reps: 5, RestSeconds: 120},
			{Name: "Burpees", Sets: 5, Reps: 15, RestSeconds: 45},
			{Name: "Muscle-ups", Sets: 3, Reps: 5, RestSeconds: 120},
		},
		"gym": {
			{Name: "Bench Press", Sets: 5, Reps: 8, RestSeconds: 120},
			{Name: "Squats", Sets: 5, Reps: 10, RestSeconds: 120},
			{Name: "Deadlifts", Sets: 5, Reps: 8, RestSeconds: 180},
			{Name: "Overhead Press", Sets: 5, Reps: 8, RestSeconds: 120},
			{Name: "Weighted Pull-ups", Sets: 4, Reps: 8, RestSeconds: 120},
		},
	},
}

// exercisesFor looks up the catalog cell for a difficulty and venue. Any
// combination the table does not cover (e.g. outdoor workouts) falls back to
// the beginner home list.
func exercisesFor(difficulty, venue string) []models.Exercise {
	if byVenue, ok := exerciseCatalog[difficulty]; ok {
		if list, ok := byVenue[venue]; ok {
			return list
		}
	}
	return exerciseCatalog["beginner"]["home"]
}
