/*
Package trie provides a prefix tree for storing a set of words.

It supports exact membership tests, insertion, removal that prunes nodes no
longer leading to any word, and enumeration of all words sharing a prefix.
Words are walked byte by byte and stored exactly as given, so any string,
valid UTF-8 or not, reads back unchanged.
*/
package trie
