// Inspection CLI: dumps the doors and face vectors stored in a hub's
// Badger database as tables. Read-only; safe to run against a live
// data directory copy.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"door-hub/domain"
)

func main() {
	dbPath := flag.String("db", "/tmp/badger", "Path to badger DB")
	prefix := flag.String("prefix", "", "Restrict the scan to one prefix (door:, facevector:, anonvector:, device:)")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Name", "Status/Size", "Updated"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				row, ok := describe(key, v)
				if !ok {
					return nil
				}
				table.Append(row)
				rows++
				return nil
			})
			if err != nil {
				fmt.Printf("Error reading key %s: %v\n", key, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
	if rows == 0 {
		color.Warn.Println("No records found")
		return
	}
	color.Success.Printf("%d records\n", rows)
}

// describe maps a raw record to one display row based on its keyspace.
func describe(key string, value []byte) ([]string, bool) {
	switch {
	case strings.HasPrefix(key, "door:"):
		var d domain.Door
		if err := json.Unmarshal(value, &d); err != nil {
			return nil, false
		}
		return []string{key, "door", d.Name, string(d.CurrentStatus), d.UpdatedAt.Format("2006-01-02 15:04:05")}, true
	case strings.HasPrefix(key, "facevector:"):
		var v domain.FaceVector
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, false
		}
		return []string{key, "face_vector", v.Name, fmt.Sprintf("%d floats", v.VectorSize), v.UpdatedAt.Format("2006-01-02 15:04:05")}, true
	case strings.HasPrefix(key, "anonvector:"):
		var v domain.AnonymousFaceVector
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, false
		}
		return []string{key, "anon_vector", v.Name, fmt.Sprintf("%d floats", v.VectorSize), v.UpdatedAt.Format("2006-01-02 15:04:05")}, true
	case strings.HasPrefix(key, "device:"):
		var d domain.Device
		if err := json.Unmarshal(value, &d); err != nil {
			return nil, false
		}
		last := "never"
		if d.LastOnline != nil {
			last = d.LastOnline.Format("2006-01-02 15:04:05")
		}
		return []string{key, "device", d.Name, d.Location, last}, true
	default:
		return []string{key, "?", "", "", ""}, true
	}
}
