// Package stats formats render timings, host details and scene summaries
// as text tables for the command line.
package stats

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"

	"voxel-raytracer/internal/scene"
	"voxel-raytracer/internal/texture"
)

// Frame is the timing of one rendered image.
type Frame struct {
	Name    string
	Pixels  int
	Elapsed time.Duration
	Success bool
}

// WriteFrames renders a per-frame timing table with a total footer.
func WriteFrames(w io.Writer, frames []Frame, wall time.Duration) {
	table := newTable(w)
	table.SetHeader([]string{"Frame", "Pixels", "Render time", "Pixels/sec", "OK"})

	var pixels int
	for _, f := range frames {
		pixels += f.Pixels
		table.Append([]string{
			f.Name,
			fmt.Sprintf("%d", f.Pixels),
			f.Elapsed.Round(time.Millisecond).String(),
			fmt.Sprintf("%.0f", rate(f.Pixels, f.Elapsed)),
			fmt.Sprintf("%t", f.Success),
		})
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", pixels), wall.Round(time.Millisecond).String(), fmt.Sprintf("%.0f", rate(pixels, wall)), " "})
	table.Render()
}

// WriteHost renders the host details.
func WriteHost(w io.Writer, h Host) {
	table := newTable(w)
	table.SetHeader([]string{"CPU", "Cores", "Clock", "RAM"})
	table.Append([]string{h.CPU, fmt.Sprintf("%d", h.Cores), fmt.Sprintf("%.2f GHz", h.ClockGHz), fmt.Sprintf("%d GB", h.TotalRAMGB)})
	table.Render()
}

// WriteScene renders the materials, blocks, lights and presets of a world.
func WriteScene(w io.Writer, world *scene.World) {
	names := make([]string, 0, len(world.Materials))
	for name := range world.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	table := newTable(w)
	table.SetHeader([]string{"Material", "Diffuse", "Shininess", "Albedo", "IOR", "Texture", "Emission"})
	for _, name := range names {
		m := world.Materials[name]
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f %.2f %.2f", m.Diffuse.R, m.Diffuse.G, m.Diffuse.B),
			fmt.Sprintf("%g", m.Shininess),
			fmt.Sprintf("%g", m.Albedo),
			fmt.Sprintf("%g", m.RefractiveIndex),
			fmt.Sprintf("%t", m.HasTexture()),
			fmt.Sprintf("%.2f %.2f %.2f", m.Emission.R, m.Emission.G, m.Emission.B),
		})
	}
	table.Render()

	table = newTable(w)
	table.SetHeader([]string{"Block", "Min", "Max"})
	for i, c := range world.Scene.Objects {
		table.Append([]string{fmt.Sprintf("%d", i), fmt.Sprintf("%g", c.Min), fmt.Sprintf("%g", c.Max)})
	}
	table.Render()

	table = newTable(w)
	table.SetHeader([]string{"Light", "Position", "Color", "Intensity"})
	for i, l := range world.Lights {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%g", l.Position),
			fmt.Sprintf("%.2f %.2f %.2f", l.Color.R, l.Color.G, l.Color.B),
			fmt.Sprintf("%g", l.Intensity),
		})
	}
	table.Render()

	table = newTable(w)
	table.SetHeader([]string{"Preset", "Sun position", "Intensity"})
	for _, p := range world.AllPresets() {
		table.Append([]string{p.Name, fmt.Sprintf("%g", p.LightPosition), fmt.Sprintf("%g", p.LightIntensity)})
	}
	table.Render()
}

// WriteTextures lists the stems of an index with their resolved files.
func WriteTextures(w io.Writer, idx *texture.Index) {
	stems := idx.Stems()
	keys := make([]string, 0, len(stems))
	for k := range stems {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := newTable(w)
	table.SetHeader([]string{"Texture", "File"})
	for _, k := range keys {
		table.Append([]string{k, stems[k]})
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", idx.Len())})
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func rate(pixels int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(pixels) / d.Seconds()
}
