package models

// Athlete is one registered athlete as persisted in the atletas table.
type Athlete struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"nome" db:"nome"`
	CPF            string `json:"cpf" db:"cpf"`
	TrainingCenter string `json:"centro_treinamento" db:"centro_treinamento"`
	Category       string `json:"categoria" db:"categoria"`
}

// AthleteView is the public projection of an Athlete. It never carries the
// store id or the CPF.
type AthleteView struct {
	Name           string `json:"nome"`
	TrainingCenter string `json:"centro_treinamento"`
	Category       string `json:"categoria"`
}

// AthleteFilter narrows a listing. Empty fields do not filter.
type AthleteFilter struct {
	Name string
	CPF  string
}

func (a Athlete) View() AthleteView {
	return AthleteView{
		Name:           a.Name,
		TrainingCenter: a.TrainingCenter,
		Category:       a.Category,
	}
}
