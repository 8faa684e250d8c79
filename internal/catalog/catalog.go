// Package catalog defines the ordered CIS check list the audit runs.
package catalog

import "github.com/yorozuya-cybersecurity/oracis-agent/internal/schema"

// Checks returns the CIS check catalog in report order. Every query is
// read-only against system catalog views and must return bounded output
// (listing queries cap rows with ROWNUM). A fresh slice is returned on each
// call so callers cannot mutate the catalog under each other.
func Checks() []schema.Check {
	return []schema.Check{
		{
			ID:          "1.1",
			Description: "Ensure auditing is enabled",
			Query:       "SELECT value FROM v$parameter WHERE name = 'audit_trail'",
			Risk:        schema.RiskHigh,
			FixType:     schema.FixQuick,
			Remediation: "Set 'audit_trail=DB,EXTENDED' in init.ora or spfile",
		},
		{
			ID:          "1.2",
			Description: "Ensure SYS operations are audited",
			Query:       "SELECT value FROM v$parameter WHERE name = 'audit_sys_operations'",
			Risk:        schema.RiskMedium,
			FixType:     schema.FixQuick,
			Remediation: "Set 'audit_sys_operations=TRUE' so actions by SYSDBA/SYSOPER are recorded",
		},
		{
			ID:          "2.1",
			Description: "Password complexity enforced",
			Query:       "SELECT profile, resource_name, limit FROM dba_profiles WHERE resource_name = 'PASSWORD_VERIFY_FUNCTION'",
			Risk:        schema.RiskMedium,
			FixType:     schema.FixPlanned,
			Remediation: "Assign strong password functions to user profiles",
		},
		{
			ID:          "2.2",
			Description: "Failed login attempts are limited",
			Query:       "SELECT profile, limit FROM dba_profiles WHERE resource_name = 'FAILED_LOGIN_ATTEMPTS' AND ROWNUM <= 5",
			Risk:        schema.RiskMedium,
			FixType:     schema.FixPlanned,
			Remediation: "Set FAILED_LOGIN_ATTEMPTS to 5 or fewer on all profiles",
		},
		{
			ID:          "3.1",
			Description: "DBA role misuse",
			Query:       "SELECT grantee FROM dba_role_privs WHERE granted_role = 'DBA'",
			Risk:        schema.RiskHigh,
			FixType:     schema.FixInvolved,
			Remediation: "Limit DBA role assignment to only authorized users",
		},
		{
			ID:          "3.2",
			Description: "Password file users with SYSDBA",
			Query:       "SELECT username, sysdba FROM v$pwfile_users WHERE sysdba = 'TRUE' AND ROWNUM <= 5",
			Risk:        schema.RiskHigh,
			FixType:     schema.FixInvolved,
			Remediation: "Remove SYSDBA from password file users that do not administer the instance",
		},
		{
			ID:          "4.1",
			Description: "Failed login audit check",
			Query:       "SELECT username, timestamp, returncode FROM dba_audit_session WHERE returncode != 0 AND ROWNUM <= 5",
			Risk:        schema.RiskMedium,
			FixType:     schema.FixQuick,
			Remediation: "Enable audit for session logon failures",
		},
		{
			ID:          "5.1",
			Description: "Check for default user accounts",
			Query:       "SELECT username, account_status FROM dba_users WHERE username IN ('SCOTT','HR','OUTLN')",
			Risk:        schema.RiskLow,
			FixType:     schema.FixQuick,
			Remediation: "Lock/remove unused default accounts",
		},
	}
}
