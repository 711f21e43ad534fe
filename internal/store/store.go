package store

import "errors"

// ErrNotFound est renvoyé quand une entité n'existe pas (ou que son
// identifiant est malformé — traité pareil côté API : 404).
var ErrNotFound = errors.New("entité introuvable")
