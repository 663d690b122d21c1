package services

import "github.com/Dosada05/workout-api/models"

// ProjectAthletes strips the store id and CPF from each record, keeping order.
func ProjectAthletes(athletes []models.Athlete) []models.AthleteView {
	views := make([]models.AthleteView, 0, len(athletes))
	for _, a := range athletes {
		views = append(views, a.View())
	}
	return views
}
