// Package components defines the agents of the aquarium and the ECS tags that
// group them into populations.
package components

// Prey tags fish that graze plants and flee predators.
type Prey struct{}

// Predator tags fish that hunt prey.
type Predator struct{}
