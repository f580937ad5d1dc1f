// Package ime composes sequences of physical key codes into text.
//
// A Table maps key-code sequences to output strings (romaji to kana, shifted
// digits to symbols). A Matcher queues incoming codes and, after each one,
// tries the longest queued suffix first; a hit removes that suffix and yields
// the mapped text, a miss keeps the queue waiting for more keys.
package ime
