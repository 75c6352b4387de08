package vitamins

import "strings"

// Vitamin es una vitamina/suplemento de la lista personal de un usuario.
type Vitamin struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	UserID string `json:"userId"`
}

// InsertVitamin son los datos necesarios para crear una vitamina.
type InsertVitamin struct {
	Name   string
	Dosage string
	UserID string
}

// VitaminPatch es la variante parcial de InsertVitamin.
// Punteros para PATCH real: nil = no tocar.
type VitaminPatch struct {
	Name   *string
	Dosage *string
	UserID *string
}

func (p VitaminPatch) IsEmpty() bool {
	return p.Name == nil && p.Dosage == nil && p.UserID == nil
}

// Apply mezcla los campos presentes sobre v. El ID nunca cambia.
func (p VitaminPatch) Apply(v Vitamin) Vitamin {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Dosage != nil {
		v.Dosage = *p.Dosage
	}
	if p.UserID != nil {
		v.UserID = *p.UserID
	}
	return v
}

// Validate devuelve una copia normalizada (trim) o un *ValidationError.
func (in InsertVitamin) Validate() (InsertVitamin, error) {
	out := InsertVitamin{
		Name:   strings.TrimSpace(in.Name),
		Dosage: strings.TrimSpace(in.Dosage),
		UserID: strings.TrimSpace(in.UserID),
	}
	if out.Name == "" {
		return InsertVitamin{}, Invalid("name", "name is required")
	}
	if out.Dosage == "" {
		return InsertVitamin{}, Invalid("dosage", "dosage is required")
	}
	if out.UserID == "" {
		return InsertVitamin{}, Invalid("userId", "userId is required")
	}
	return out, nil
}

// Validate valida individualmente cada campo presente.
func (p VitaminPatch) Validate() (VitaminPatch, error) {
	var out VitaminPatch
	var err error

	if out.Name, err = trimPresent("name", p.Name); err != nil {
		return VitaminPatch{}, err
	}
	if out.Dosage, err = trimPresent("dosage", p.Dosage); err != nil {
		return VitaminPatch{}, err
	}
	if out.UserID, err = trimPresent("userId", p.UserID); err != nil {
		return VitaminPatch{}, err
	}
	return out, nil
}

func trimPresent(field string, v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil, Invalid(field, field+" must not be empty")
	}
	return &s, nil
}
