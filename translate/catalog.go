package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// german holds the de translations, keyed by the en-US format.
var german = [][2]string{
	// memory
	{"invalid value", "ungültiger Wert"},
	{"invalid memory address", "ungültige Speicheradresse"},
	{"invalid cell mode", "ungültiger Zellenmodus"},
	{"expected a string of length 1, received '%v'", "Zeichenkette der Länge 1 erwartet, '%v' erhalten"},
	{"invalid value %v, only numbers and characters allowed", "ungültiger Wert %v, nur Zahlen und Zeichen erlaubt"},
	{"invalid memory position %v, only integers allowed", "ungültige Speicherposition %v, nur ganze Zahlen erlaubt"},

	// interpreter
	{"loop block must start with '['", "Schleifenblock muss mit '[' beginnen"},
	{"invalid character %q", "ungültiges Zeichen %q"},
	{"%d unclosed brackets", "%d ungeschlossene Klammern"},
	{"syntax error at offset %d: %v", "Syntaxfehler an Position %d: %v"},

	// repl
	{"usage: %v", "Aufruf: %v"},
	{"!! unknown command %q, try 'help'\n", "!! unbekannter Befehl %q, siehe 'help'\n"},
	{"=> address: %d, byte: %d, char: '%c'\n", "=> Adresse: %d, Byte: %d, Zeichen: '%c'\n"},
	{"shows this help", "zeigt diese Hilfe"},
	{"displays the pointer's current value", "zeigt den aktuellen Wert des Zeigers"},
	{"displays the value at an address", "zeigt den Wert an einer Adresse"},
	{"sets the value at an address", "setzt den Wert an einer Adresse"},
	{"displays every cell in use", "zeigt alle benutzten Zellen"},
	{"clears the memory and the pointer", "löscht den Speicher und den Zeiger"},
	{"exits the repl and returns to the interpreter", "verlässt die REPL und kehrt zum Interpreter zurück"},
	{"exit the interpreter completely", "beendet den Interpreter vollständig"},
}

func loadCatalog() {
	for _, entry := range german {
		err := message.SetString(language.German, entry[0], entry[1])
		if err != nil {
			panic(err)
		}
	}
}
