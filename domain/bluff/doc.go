// Package bluff implements the engine of a turn-based bluffing card game.
//
// # Core Types
//
// Game: owns the player registry, the concealed pending plays, the survival
// counters, the deck and the round state, and drives the round/turn state
// machine.
//
// Registry: the seated players with their alive flag and hand, plus the
// circular scans used to find whose turn is next.
//
// PendingPlay: a tagged record of the cards a player put down on their most
// recent turn. It stays hidden until somebody questions that play.
//
// # Game Flow
//
// Each round deals five cards to every alive player and draws a focus card.
// Players take turns putting down one to three cards that they claim match
// the focus. The next player may question the play: the cards are revealed
// and whoever was wrong (the player who lied, or the player who questioned
// an honest play) undergoes a bomb check. Surviving two bomb checks in a row
// means the third one always kills. A question always ends the round and the
// questioner leads the next one.
//
// When only two players are alive and one of them empties their hand, the
// other is forced to question that last play.
//
// # Collaborators
//
// The engine performs no I/O. Human moves come from a MoveProvider and a
// QuestionDecider, which must only return validated values (see
// ValidateCount and ValidatePositions). Everything that happens is reported
// as an Event to an EventSink.
package bluff
