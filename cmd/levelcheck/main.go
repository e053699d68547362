package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/milk9111/echoknight/levels"
	"github.com/milk9111/echoknight/prefabs"
)

func main() {
	file := flag.String("file", "", "campaign JSON on disk (default: embedded campaign)")
	quiet := flag.Bool("quiet", false, "only print levels with issues")
	flag.Parse()

	var (
		c   *levels.Campaign
		err error
	)
	if *file != "" {
		c, err = levels.LoadCampaignFromFS(os.DirFS(filepath.Dir(*file)), filepath.Base(*file))
	} else {
		c, err = levels.LoadCampaign()
	}
	if err != nil {
		log.Fatalf("load campaign: %v", err)
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("load game spec: %v", err)
	}

	reports := inspectCampaign(c, spec.Player.Width, spec.Player.Height)
	if n := writeReports(os.Stdout, reports, *quiet); n > 0 {
		log.Printf("%d of %d levels have issues", n, len(reports))
		os.Exit(1)
	}
}

func inspectCampaign(c *levels.Campaign, playerW, playerH float64) []levels.Report {
	out := make([]levels.Report, 0, c.Len())
	for _, lvl := range c.Levels {
		out = append(out, levels.Inspect(lvl.Name, lvl.Grid, c.TileSize, c.Spawn, playerW, playerH))
	}
	return out
}

// writeReports prints one row per level and returns how many had issues.
func writeReports(w io.Writer, reports []levels.Report, quiet bool) int {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSIZE\tWALLS\tAMP\tABSORB\tWEAK\tSTRONG\tHEALTH\tBONUS\tISSUES")
	bad := 0
	for i, r := range reports {
		if len(r.Issues) > 0 {
			bad++
		} else if quiet {
			continue
		}
		l := r.Layout
		issues := "-"
		if len(r.Issues) > 0 {
			issues = fmt.Sprint(r.Issues)
		}
		fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			i+1, r.Name, l.Cols, l.Rows,
			l.Count(levels.TileWall),
			l.Count(levels.TileAmplifyingWall),
			l.Count(levels.TileAbsorbingWall),
			l.Count(levels.TileWeakEnemy),
			l.Count(levels.TileStrongEnemy),
			l.Count(levels.TileHealthPack),
			l.Count(levels.TileBonus),
			issues,
		)
	}
	tw.Flush()
	return bad
}
