package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound      = errors.New("ressource introuvable")
	ErrValidation    = errors.New("entrée invalide")
	ErrPersistence   = errors.New("échec de persistance")
	ErrInvalidImport = errors.New("document d'import invalide")
)
