package services

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

// ErrProfileIncomplete signals that the caller's profile is missing or lacks
// the attributes an operation needs. Surfaced as a client error, never
// retried.
var ErrProfileIncomplete = errors.New("profile incomplete")

const (
	// activityMultiplier converts BMR into total daily energy expenditure.
	// The app does not track activity level, so a moderate 1.5 is assumed
	// for everyone.
	activityMultiplier = 1.5

	// waterIntakeML is the fixed daily hydration target, independent of the
	// profile.
	waterIntakeML = 2500
)

type profileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

type NutritionService struct {
	profileRepo profileReader
	intn        func(n int) int
}

// NewNutritionService builds the service. intn draws a uniform value in
// [0, n) for meal picks; pass nil to use the global math/rand source.
func NewNutritionService(profileRepo profileReader, intn func(n int) int) *NutritionService {
	if intn == nil {
		intn = rand.Intn
	}
	return &NutritionService{profileRepo: profileRepo, intn: intn}
}

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type NutritionPlan struct {
	DailyCalories int      `json:"daily_calories"`
	Macros        Macros   `json:"macros"`
	Meals         MealMenu `json:"meals"`
	WaterIntakeML int      `json:"water_intake_ml"`
}

type DailyMeals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snack     string `json:"snack"`
}

// GetPlan computes the calorie and macro targets for the user's profile and
// attaches the full meal menu for their diet preference. Weight, height and
// age must all be present; the engine never computes with defaults.
func (s *NutritionService) GetPlan(ctx context.Context, userID int64) (*NutritionPlan, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}
	if profile.WeightKG == nil || profile.HeightCM == nil || profile.Age == nil {
		return nil, ErrProfileIncomplete
	}

	bmr := basalMetabolicRate(*profile.WeightKG, *profile.HeightCM, *profile.Age, profile.Gender)
	calories := dailyCalories(bmr, profile.FitnessGoal)

	return &NutritionPlan{
		DailyCalories: calories,
		Macros: Macros{
			Protein: proteinGrams(*profile.WeightKG, profile.FitnessGoal),
			Carbs:   carbsGrams(calories),
			Fats:    fatsGrams(calories),
		},
		Meals:         menuFor(profile.FoodPreference),
		WaterIntakeML: waterIntakeML,
	}, nil
}

// TodaysMeals picks one dish per slot, independently and uniformly at random
// from the menu for the user's diet preference. Repeated calls may repeat or
// vary freely.
func (s *NutritionService) TodaysMeals(ctx context.Context, userID int64) (*DailyMeals, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}

	menu := menuFor(profile.FoodPreference)
	return &DailyMeals{
		Breakfast: s.pick(menu.Breakfast),
		Lunch:     s.pick(menu.Lunch),
		Dinner:    s.pick(menu.Dinner),
		Snack:     s.pick(menu.Snacks),
	}, nil
}

func (s *NutritionService) pick(items []string) string {
	return items[s.intn(len(items))]
}

// basalMetabolicRate implements the Mifflin-St Jeor equation. Inputs pass
// through arithmetically; validation happens at the profile boundary.
func basalMetabolicRate(weightKG, heightCM float64, age int, gender string) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	switch gender {
	case "male":
		return base + 5
	case "female":
		return base - 161
	default:
		return base - 50
	}
}

func dailyCalories(bmr float64, fitnessGoal string) int {
	tdee := bmr * activityMultiplier
	switch fitnessGoal {
	case "weight-loss":
		return int(math.Round(tdee * 0.85))
	case "muscle-gain":
		return int(math.Round(tdee * 1.15))
	case "endurance":
		return int(math.Round(tdee * 1.10))
	default:
		return int(math.Round(tdee))
	}
}

func proteinGrams(weightKG float64, fitnessGoal string) int {
	perKG := 1.6
	switch fitnessGoal {
	case "weight-loss":
		perKG = 2.2
	case "muscle-gain":
		perKG = 2.0
	}
	return int(math.Round(weightKG * perKG))
}

// 45% of calories from carbs at 4 kcal/g.
func carbsGrams(calories int) int {
	return int(math.Round(float64(calories) * 0.45 / 4))
}

// 25% of calories from fats at 9 kcal/g.
func fatsGrams(calories int) int {
	return int(math.Round(float64(calories) * 0.25 / 9))
}
