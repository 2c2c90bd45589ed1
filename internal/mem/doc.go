// Package mem provides cache-line aligned allocation for the searched arrays.
package mem
