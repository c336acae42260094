// Package gspanio reads transaction-graph databases in the line-oriented
// format of spec §6.1 and writes mined closed patterns in the format of
// spec §6.2.
package gspanio
