package entities

import (
	"errors"
	"fmt"
	"time"
)

// Components are the attributes shared by every hardware part.
type Components struct {
	Count        uint64 `json:"count"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
}

type CPUs struct {
	Components
	Cores     uint64 `json:"cores"`
	Frequency uint64 `json:"frequency"`
}

type Disks struct {
	Components
	Type     string `json:"type"`
	Capacity uint64 `json:"capacity"`
}

type GPUs struct {
	Components
}

type MemoryModules struct {
	Components
	Capacity uint64 `json:"capacity"`
}

// ExternalService is an endpoint reachable from outside, e.g. SSH.
type ExternalService struct {
	IPAddress string `json:"ip_address"`
	Port      int64  `json:"port"`
	DNSName   string `json:"dns_name,omitempty"`
}

// BareMetalServer is a dedicated server reserved by a team.
type BareMetalServer struct {
	Name                 string           `json:"name"`
	IPAddress            string           `json:"ip_address"`
	Manufacturer         string           `json:"manufacturer"`
	Model                string           `json:"model"`
	Description          string           `json:"description,omitempty"`
	SSHAccess            *ExternalService `json:"ssh_access,omitempty"`
	SupportAccessEnabled bool             `json:"support_access_enabled,omitempty"`
}

// BareMetalSpecs is the hardware of a server.
type BareMetalSpecs struct {
	CPUCores      uint64          `json:"cpu_cores"`
	RAMCapacity   uint64          `json:"ram_capacity"`
	DiskCapacity  uint64          `json:"disk_capacity"`
	CPUs          []CPUs          `json:"cpus,omitempty"`
	Disks         []Disks         `json:"disks,omitempty"`
	GPUs          []GPUs          `json:"gpus,omitempty"`
	MemoryModules []MemoryModules `json:"memory_modules,omitempty"`
}

// BareMetalOSStatus tracks operating system imaging.
type BareMetalOSStatus struct {
	OSSelection       string    `json:"os_selection"`
	OSStatus          string    `json:"os_install_status"`
	LastImagingUpdate time.Time `json:"last_imaging_update"`
}

// BareMetalServerDetails is a server with its hardware and imaging status.
type BareMetalServerDetails struct {
	BareMetalServer
	BareMetalSpecs
	OSStatus *BareMetalOSStatus `json:"os_status,omitempty"`
}

// BareMetalServerUpdate changes a server's description.
type BareMetalServerUpdate struct {
	Description string `json:"description,omitempty"`
}

// BareMetalReservation asks for a server matching Specs.
type BareMetalReservation struct {
	Description string         `json:"description,omitempty"`
	Specs       BareMetalSpecs `json:"specs"`
}

// BareMetalPowerState is the power status reported by the BMC.
type BareMetalPowerState struct {
	State string `json:"state"`
}

// ConsoleURL is a short-lived link to a server's remote console.
type ConsoleURL struct {
	URL string `json:"url"`
}

// AvailableBareMetal is the stock of one server configuration.
type AvailableBareMetal struct {
	Quantity                  int64          `json:"Quantity"`
	MinimumReservationMinutes int64          `json:"MinimumReservationMinutes"`
	OnDemandPrice             int64          `json:"OnDemandPrice,omitempty"`
	Specs                     BareMetalSpecs `json:"Specs,omitempty"`
}

// BareMetalPowerAction is a power operation a server accepts.
type BareMetalPowerAction string

const (
	BareMetalPowerOn          BareMetalPowerAction = "power_on"
	BareMetalGracefulShutdown BareMetalPowerAction = "graceful_shutdown"
	BareMetalForceShutdown    BareMetalPowerAction = "force_shutdown"
	BareMetalWarmReboot       BareMetalPowerAction = "warm_reboot"
	BareMetalColdReboot       BareMetalPowerAction = "cold_reboot"
	BareMetalACReset          BareMetalPowerAction = "ac_reset"
)

// VirtualMachine is a VM deployed for a team.
type VirtualMachine struct {
	Name        string           `json:"name"`
	IPAddress   string           `json:"ip_address"`
	Description string           `json:"description,omitempty"`
	SSHAccess   *ExternalService `json:"ssh_access,omitempty"`
}

// VirtualMachineSpecs is both the shape of a VM and a provisioning request.
type VirtualMachineSpecs struct {
	CPUCores     uint64 `json:"cpu_cores"`
	RAMCapacity  uint64 `json:"ram_capacity"`
	DiskCapacity uint64 `json:"disk_capacity"`
	CPUs         *CPUs  `json:"cpus,omitempty"`
	GPUs         []GPUs `json:"gpus,omitempty"`
}

// VirtualMachineDetails is a VM with its specifications.
type VirtualMachineDetails struct {
	VirtualMachine
	VirtualMachineSpecs
}

// VirtualMachineUpdate changes a VM's description.
type VirtualMachineUpdate struct {
	Description string `json:"description,omitempty"`
}

// VirtualMachineState is the hypervisor state of a VM.
type VirtualMachineState struct {
	State string `json:"state"`
	Host  string `json:"host"`
}

// AvailableVirtualMachine is the stock of one VM configuration.
type AvailableVirtualMachine struct {
	Quantity                  int64               `json:"Quantity"`
	MinimumReservationMinutes int64               `json:"MinimumReservationMinutes"`
	OnDemandPrice             int64               `json:"OnDemandPrice,omitempty"`
	Specs                     VirtualMachineSpecs `json:"Specs,omitempty"`
}

// VirtualMachineAction is a lifecycle operation a VM accepts.
type VirtualMachineAction string

const (
	VirtualMachineStart     VirtualMachineAction = "start"
	VirtualMachineStop      VirtualMachineAction = "stop"
	VirtualMachineShutdown  VirtualMachineAction = "shutdown"
	VirtualMachineReboot    VirtualMachineAction = "reboot"
	VirtualMachineHardReset VirtualMachineAction = "hard-reset"
	VirtualMachineRebuild   VirtualMachineAction = "rebuild"
)

// ErrUnknownAction is returned for lifecycle or power actions the API does not accept.
var ErrUnknownAction = errors.New("unknown action")

// Validate returns ErrUnknownAction unless it is one of the BareMetalPowerAction constants.
func (it BareMetalPowerAction) Validate() error {
	switch it {
	case BareMetalPowerOn, BareMetalGracefulShutdown, BareMetalForceShutdown,
		BareMetalWarmReboot, BareMetalColdReboot, BareMetalACReset:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, string(it))
}

// Validate returns ErrUnknownAction unless it is one of the VirtualMachineAction constants.
func (it VirtualMachineAction) Validate() error {
	switch it {
	case VirtualMachineStart, VirtualMachineStop, VirtualMachineShutdown,
		VirtualMachineReboot, VirtualMachineHardReset, VirtualMachineRebuild:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, string(it))
}
