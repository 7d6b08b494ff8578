package entity

import (
	"sort"
	"strings"
)

// Role nombre de un grupo de permisos.
type Role string

// Roles conocidos del personal de restaurante.
const (
	RoleGerente Role = "GERENTE"
	RoleGarcom  Role = "GARCOM"
	RoleCozinha Role = "COZINHA"
	RoleBar     Role = "BAR"
)

// ParseRole normaliza un nombre de rol y reporta si es uno de los conocidos.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleGerente, RoleGarcom, RoleCozinha, RoleBar:
		return r, true
	}
	return r, false
}

// RoleSet conjunto de roles. El valor cero (nil) es un conjunto vacío válido.
type RoleSet map[Role]struct{}

// NewRoleSet construye un conjunto a partir de nombres; ignora cadenas vacías.
func NewRoleSet(names ...string) RoleSet {
	set := make(RoleSet, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		set[Role(n)] = struct{}{}
	}
	return set
}

// RolesOf construye un conjunto a partir de roles tipados.
func RolesOf(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Has informa si el rol pertenece al conjunto.
func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// Intersects es true si ambos conjuntos comparten al menos un rol.
func (s RoleSet) Intersects(other RoleSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for r := range small {
		if _, ok := big[r]; ok {
			return true
		}
	}
	return false
}

// Names devuelve los nombres ordenados alfabéticamente (salida estable en JSON y tokens).
func (s RoleSet) Names() []string {
	out := make([]string, 0, len(s))
	for r := range s {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}
