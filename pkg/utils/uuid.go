package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Tamanho do id de execução do pipeline
const runIDLength = 10

// GenerateID gera o identificador curto de uma execução do pipeline
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}
