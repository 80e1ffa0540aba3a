package config

// PolicyInfo is one firewall policy entry in evaluation order.
type PolicyInfo struct {
	ID    string
	Entry *Entry
}

// ExtractPolicies returns the entries of firewall.policy in the order the
// device evaluates them. It returns nil when the section is absent or has no
// edit table.
func ExtractPolicies(cfg *Config) []PolicyInfo {
	node, err := cfg.Section("firewall.policy")
	if err != nil {
		return nil
	}
	var policies []PolicyInfo
	for _, e := range node.Edits().Entries() {
		policies = append(policies, PolicyInfo{ID: e.ID, Entry: e})
	}
	return policies
}

// InterfaceInfo is one system.interface entry.
type InterfaceInfo struct {
	Name  string
	Entry *Entry
}

// ExtractInterfaces returns the entries of system.interface in declaration
// order, or nil when the section is absent.
func ExtractInterfaces(cfg *Config) []InterfaceInfo {
	node, err := cfg.Section("system.interface")
	if err != nil {
		return nil
	}
	var ifaces []InterfaceInfo
	for _, e := range node.Edits().Entries() {
		ifaces = append(ifaces, InterfaceInfo{Name: e.ID, Entry: e})
	}
	return ifaces
}
