package process

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Privilege is a well-known LUID low part accepted by RtlAdjustPrivilege.
type Privilege uint32

const (
	SeCreateToken Privilege = iota + 2
	SeAssignPrimaryToken
	SeLockMemory
	SeIncreaseQuota
	SeMachineAccount
	SeTcb
	SeSecurity
	SeTakeOwnership
	SeLoadDriver
	SeSystemProfile
	SeSystemtime
	SeProfileSingleProcess
	SeIncreaseBasePriority
	SeCreatePagefile
	SeCreatePermanent
	SeBackup
	SeRestore
	SeShutdown
	SeDebug
	SeAudit
	SeSystemEnvironment
	SeChangeNotify
	SeRemoteShutdown
	SeUndock
	SeSyncAgent
	SeEnableDelegation
	SeManageVolume
	SeImpersonate
	SeCreateGlobal
	SeTrustedCredManAccess
	SeRelabel
	SeIncreaseWorkingSet
	SeTimeZone
	SeCreateSymbolicLink
	SeDelegateSessionUserImpersonate
)

var ErrInvalidPrivilege = errors.New("invalid privilege")

var privilegeNames = [...]string{
	SeCreateToken:                    "SeCreateTokenPrivilege",
	SeAssignPrimaryToken:             "SeAssignPrimaryTokenPrivilege",
	SeLockMemory:                     "SeLockMemoryPrivilege",
	SeIncreaseQuota:                  "SeIncreaseQuotaPrivilege",
	SeMachineAccount:                 "SeMachineAccountPrivilege",
	SeTcb:                            "SeTcbPrivilege",
	SeSecurity:                       "SeSecurityPrivilege",
	SeTakeOwnership:                  "SeTakeOwnershipPrivilege",
	SeLoadDriver:                     "SeLoadDriverPrivilege",
	SeSystemProfile:                  "SeSystemProfilePrivilege",
	SeSystemtime:                     "SeSystemtimePrivilege",
	SeProfileSingleProcess:           "SeProfileSingleProcessPrivilege",
	SeIncreaseBasePriority:           "SeIncreaseBasePriorityPrivilege",
	SeCreatePagefile:                 "SeCreatePagefilePrivilege",
	SeCreatePermanent:                "SeCreatePermanentPrivilege",
	SeBackup:                         "SeBackupPrivilege",
	SeRestore:                        "SeRestorePrivilege",
	SeShutdown:                       "SeShutdownPrivilege",
	SeDebug:                          "SeDebugPrivilege",
	SeAudit:                          "SeAuditPrivilege",
	SeSystemEnvironment:              "SeSystemEnvironmentPrivilege",
	SeChangeNotify:                   "SeChangeNotifyPrivilege",
	SeRemoteShutdown:                 "SeRemoteShutdownPrivilege",
	SeUndock:                         "SeUndockPrivilege",
	SeSyncAgent:                      "SeSyncAgentPrivilege",
	SeEnableDelegation:               "SeEnableDelegationPrivilege",
	SeManageVolume:                   "SeManageVolumePrivilege",
	SeImpersonate:                    "SeImpersonatePrivilege",
	SeCreateGlobal:                   "SeCreateGlobalPrivilege",
	SeTrustedCredManAccess:           "SeTrustedCredManAccessPrivilege",
	SeRelabel:                        "SeRelabelPrivilege",
	SeIncreaseWorkingSet:             "SeIncreaseWorkingSetPrivilege",
	SeTimeZone:                       "SeTimeZonePrivilege",
	SeCreateSymbolicLink:             "SeCreateSymbolicLinkPrivilege",
	SeDelegateSessionUserImpersonate: "SeDelegateSessionUserImpersonatePrivilege",
}

func (p Privilege) Valid() bool {
	return p >= SeCreateToken && p <= SeDelegateSessionUserImpersonate
}

func (p Privilege) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Privilege(%d)", uint32(p))
	}

	return privilegeNames[p]
}

// Privileges lists every valid privilege in numeric order.
func Privileges() []Privilege {
	out := make([]Privilege, 0, SeDelegateSessionUserImpersonate-SeCreateToken+1)
	for p := SeCreateToken; p <= SeDelegateSessionUserImpersonate; p++ {
		out = append(out, p)
	}

	return out
}

// ParsePrivilege accepts the full name ("SeDebugPrivilege"), the name
// without its prefix or suffix ("debug", "SeDebug"), or the numeric value.
// Matching is case-insensitive.
func ParsePrivilege(s string) (Privilege, error) {
	name := strings.TrimSpace(s)

	if n, err := strconv.ParseUint(name, 0, 32); err == nil {
		if p := Privilege(n); p.Valid() {
			return p, nil
		}

		return 0, fmt.Errorf("%w: %q", ErrInvalidPrivilege, s)
	}

	key := strings.TrimSuffix(strings.ToLower(name), "privilege")
	for _, p := range Privileges() {
		base := strings.TrimSuffix(strings.ToLower(p.String()), "privilege")
		if key == base || key == strings.TrimPrefix(base, "se") {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidPrivilege, s)
}
