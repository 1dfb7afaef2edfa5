package metrics

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	systemMetricsInterval = 5 * time.Second
	cpuSampleWindow       = time.Second
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)
)

// SystemCollector - фоновая задача, снимает загрузку CPU и память хоста и процесса.
type SystemCollector struct{}

func NewSystemCollector() *SystemCollector {
	return &SystemCollector{}
}

func (SystemCollector) TTL() time.Duration {
	return systemMetricsInterval
}

func (SystemCollector) Info() string {
	return "system metrics"
}

func (SystemCollector) Do(ctx context.Context) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))

	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err != nil {
		return fmt.Errorf("cpu percent: %w", err)
	}
	if len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return fmt.Errorf("virtual memory: %w", err)
	}
	SystemMemoryUsage.Set(float64(vmStat.Used))
	return nil
}
