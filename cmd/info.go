package cmd

import (
	"bytes"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
)

// hostInfo describes the machine a render runs on
type hostInfo struct {
	CPUModel     string
	LogicalCores int
	TotalMemory  uint64 // Bytes
}

// Info prints BVH statistics of a scene next to host information.
func Info(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	start := time.Now()
	sc, err := loadAndBuild(ctx.String("scene"), ctx.String("scene-file"), scene.Overrides{}, true)
	if err != nil {
		return err
	}
	buildTime := time.Since(start)

	stats, _ := sc.BVHStats()
	bounds, _ := sc.World.BoundingBox()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk(bvhRows(sc.Name, stats, bounds, buildTime))

	host, err := readHostInfo()
	if err != nil {
		logger.Warningf("host information unavailable: %v", err)
	} else {
		table.AppendBulk(hostRows(host))
	}

	table.Render()
	logger.Noticef("scene statistics\n%s", buf.String())
	return nil
}

func bvhRows(name string, stats core.BVHStats, bounds core.AABB, buildTime time.Duration) [][]string {
	return [][]string{
		{"Scene", name},
		{"Shapes", fmt.Sprintf("%d", stats.TotalShapes)},
		{"BVH nodes", fmt.Sprintf("%d", stats.TotalNodes)},
		{"BVH leaves", fmt.Sprintf("%d", stats.LeafNodes)},
		{"BVH max depth", fmt.Sprintf("%d", stats.MaxDepth)},
		{"BVH avg leaf depth", fmt.Sprintf("%.2f", stats.AvgDepth)},
		{"BVH leaf capacity", fmt.Sprintf("%d", stats.LeafCapacity)},
		{"Bounds", fmt.Sprintf("%v - %v", bounds.Min, bounds.Max)},
		{"Bounds center", bounds.Center().String()},
		{"Bounds surface area", fmt.Sprintf("%.3f", bounds.SurfaceArea())},
		{"Build time", buildTime.Round(time.Microsecond).String()},
	}
}

func hostRows(host hostInfo) [][]string {
	return [][]string{
		{"CPU", host.CPUModel},
		{"Logical cores", fmt.Sprintf("%d", host.LogicalCores)},
		{"Memory", fmt.Sprintf("%.1f GiB", float64(host.TotalMemory)/(1<<30))},
	}
}

func readHostInfo() (hostInfo, error) {
	host := hostInfo{CPUModel: runtime.GOARCH}

	cpuInfo, err := cpu.Info()
	if err != nil {
		return host, err
	}
	if len(cpuInfo) > 0 {
		host.CPUModel = cpuInfo[0].ModelName
	}

	cores, err := cpu.Counts(true)
	if err != nil {
		return host, err
	}
	host.LogicalCores = cores

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return host, err
	}
	host.TotalMemory = memInfo.Total

	return host, nil
}
