package license

// Embedded license templates. Field names map to templateData; the text is
// carried from the protective licensing reference material.

const standardTemplate = `PROTECTIVE SKILLS LICENSE v1.0
================================

Copyright (c) {{.Year}} {{.EntityName}}
All rights reserved.

{{.OwnershipStatement}}

GRANT OF LICENSE
----------------
Subject to the terms and conditions below, you are granted a limited,
non-exclusive, non-transferable license to:

1. Use this skill for personal, educational, or internal business purposes
2. View and study the skill's code and documentation for learning purposes
3. Include attribution when referencing or discussing this skill

EXPLICIT PROHIBITIONS
---------------------
The following uses are STRICTLY PROHIBITED without prior written permission:

1. AI/ML TRAINING PROHIBITION
   This skill and all its components (including but not limited to: instruction
   text, code, scripts, documentation, examples, and metadata) SHALL NOT be used:

   a) As training data for any artificial intelligence system, machine learning
      model, large language model (LLM), neural network, or other automated
      learning system

   b) For fine-tuning, pre-training, or post-training of AI/ML models

   c) For creating embeddings, vector representations, or knowledge bases used
      in AI systems

   d) For retrieval-augmented generation (RAG) systems or similar AI-assisted
      retrieval systems

   e) For data mining, web scraping, or automated extraction for AI purposes

   f) For any form of synthetic data generation or AI-assisted derivative works

   g) As input to any automated system that generates, modifies, or derives
      content based on analysis of this work

2. COMMERCIAL USE RESTRICTION
   You may NOT use, sell, license, or commercialize this skill or derivative
   works without explicit written permission from the copyright holder{{.Plural}}.

3. REDISTRIBUTION RESTRICTION
   You may NOT redistribute, publish, or make this skill available through
   public repositories, marketplaces, or platforms without explicit written
   permission from the copyright holder{{.Plural}}.

4. MODIFICATION RESTRICTION
   You may NOT create derivative works, modifications, or adaptations of this
   skill without explicit written permission from the copyright holder{{.Plural}}.

ATTRIBUTION REQUIREMENTS
-------------------------
When referencing this skill in documentation, publications, or communications:

1. Clearly identify the copyright holder{{.Plural}}: "{{.EntityName}}"
2. Include a link to the original source if available
3. Indicate if any modifications were made (if permitted under separate agreement)
4. Preserve all copyright and license notices

DISCLAIMER OF WARRANTIES
------------------------
THIS SKILL IS PROVIDED "AS IS" WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
PARTICULAR PURPOSE, AND NONINFRINGEMENT.

IN NO EVENT SHALL THE COPYRIGHT HOLDER{{.PluralUpper}} BE LIABLE FOR ANY CLAIM, DAMAGES, OR
OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
FROM, OUT OF, OR IN CONNECTION WITH THE SKILL OR THE USE OR OTHER DEALINGS IN
THE SKILL.

LICENSE VIOLATIONS
------------------
Any violation of this license, particularly the AI/ML training prohibition,
constitutes copyright infringement and may result in:

1. Immediate termination of all licenses granted herein
2. Legal action to enforce copyright and seek damages
3. Injunctive relief to prevent ongoing violations
4. Recovery of attorneys' fees and costs

PERMISSION REQUESTS
-------------------
To request permission for uses prohibited under this license, contact:

{{.ContactInfo}}

GOVERNING LAW
-------------
This license shall be governed by and construed in accordance with the laws of
{{.Jurisdiction}}, without regard to its conflict of law provisions.

Any disputes arising under this license shall be subject to the exclusive
jurisdiction of the courts located in {{.Jurisdiction}}.

================================================================================
Last Updated: {{.Date}}
License Version: 1.0
Copyright Holder{{.Plural}}: {{.EntityName}}
`

const maximumTemplate = `PROTECTIVE SKILLS LICENSE - MAXIMUM PROTECTION v2.0
================================================

Copyright (c) {{.Year}} {{.EntityName}}
All rights reserved.

{{.OwnershipStatement}}

NOTICE: This work contains proprietary trade secrets, confidential information,
and intellectual property protected under U.S. and international law. Any
unauthorized access, use, reproduction, or distribution may subject violators to
severe civil and criminal penalties.

DIGITAL FINGERPRINT REQUIREMENT
--------------------------------
This work incorporates digital watermarking and cryptographic signatures. Any
use, access, or distribution creates forensic evidence of interaction that may
be used in legal proceedings. By accessing this work, you consent to forensic
analysis of your systems if violations are suspected.

Digital Signature: {{.DigitalSignature}}
Registration Marker: {{.RegistrationMarker}}

GRANT OF LICENSE
----------------
Subject to STRICT COMPLIANCE with ALL terms herein, a LIMITED, REVOCABLE,
NON-EXCLUSIVE, NON-TRANSFERABLE, NON-SUBLICENSABLE license is granted solely to:

1. Use for personal, educational, or internal business purposes only
2. View and study SOLELY for learning (not training) purposes
3. Include FULL attribution in ANY reference

This license automatically terminates upon ANY violation, attempted violation,
or challenge to its validity.

ABSOLUTE PROHIBITIONS - LIQUIDATED DAMAGES APPLY
-------------------------------------------------
The following uses are ABSOLUTELY PROHIBITED and subject to LIQUIDATED DAMAGES
of $250,000 USD per violation, plus additional remedies:

1. AI/ML TRAINING PROHIBITION - $250,000 PER INSTANCE

   This work and ALL components SHALL NOT, MUST NOT, and CANNOT be used:

   a) As training data for ANY artificial intelligence, machine learning,
      large language model, neural network, or automated learning system

   b) For fine-tuning, pre-training, post-training, or ANY model adjustment

   c) For creating embeddings, vectors, tensors, or vector representations

   d) For retrieval-augmented generation (RAG) or hybrid systems

   e) For data mining, scraping, crawling, or automated extraction

   f) For synthetic data generation or derivative AI content

   g) As input to ANY system that learns, adapts, or derives patterns

   h) For benchmarking, evaluation, or testing of AI/ML systems

   i) For research involving machine learning or artificial intelligence

   j) In ANY way that could enable AI/ML capability development

   CRIMINAL NOTICE: Violations may constitute violations of the Computer Fraud
   and Abuse Act (18 U.S.C. §1030), Economic Espionage Act (18 U.S.C. §1831),
   Digital Millennium Copyright Act (17 U.S.C. §1201), and applicable state
   computer crime statutes.

2. COMMERCIAL USE PROHIBITION - $100,000 PER INSTANCE
3. REDISTRIBUTION PROHIBITION - $50,000 PER INSTANCE
4. MODIFICATION PROHIBITION - $75,000 PER INSTANCE
5. REVERSE ENGINEERING PROHIBITION - $150,000 PER INSTANCE
6. CIRCUMVENTION PROHIBITION - $500,000 PER INSTANCE + CRIMINAL PENALTIES

LIQUIDATED DAMAGES SCHEDULE
----------------------------
- AI/ML Training Violation: $250,000 per instance
- Commercial Use Violation: $100,000 per instance
- Redistribution Violation: $50,000 per instance
- Modification Violation: $75,000 per instance
- Reverse Engineering: $150,000 per instance
- Circumvention Attempt: $500,000 per instance
- Continuing Violations: $10,000 per day
- Willful Violations: TRIPLE all damages (TREBLE DAMAGES)
- Major Tech Companies (>$1B market cap): 10x all damages ($2.5M minimum)

ENHANCED REMEDIES
-----------------
Upon ANY violation, copyright holder{{.Plural}} entitled to:
1. IMMEDIATE INJUNCTIVE RELIEF without bond
2. TREBLE DAMAGES for willful violations
3. PUNITIVE DAMAGES up to $10,000,000
4. ALL attorneys' fees at 3x multiplier
5. EXPERT WITNESS and forensic costs
6. DISGORGEMENT of all profits
7. DESTRUCTION of all copies
8. PUBLIC DISCLOSURE of violation
9. CRIMINAL REFERRAL to authorities
10. REGULATORY REPORTING

PERSONAL LIABILITY
------------------
Individuals who authorize, direct, participate in, or benefit from violations
are PERSONALLY LIABLE. Corporate veils SHALL be pierced for AI/ML violations.

FORUM SELECTION AND PROCEDURE
------------------------------
EXCLUSIVE JURISDICTION: Superior Court of California, {{.County}} County
APPLICABLE LAW: California and U.S. Federal law
NO JURY TRIAL FOR VIOLATORS (copyright holder{{.Plural}} retain{{.Verb}} jury rights)
EXPEDITED PROCEEDINGS: 24-hour TRO/injunction
SERVICE: Email constitutes valid service
LIMITATIONS: 10 years from discovery
BOND: $1,000,000 bond to challenge enforcement

CRIMINAL LAW NOTICE
--------------------
Violations subject to prosecution under:
- Computer Fraud and Abuse Act (18 U.S.C. §1030)
- Economic Espionage Act (18 U.S.C. §1831-1839)
- Digital Millennium Copyright Act (17 U.S.C. §1201-1205)
- Wire Fraud (18 U.S.C. §1343)
- RICO Act (18 U.S.C. §1961-1968)
- California Penal Code (Cal. Penal Code §502)
- International cybercrime treaties

The copyright holder{{.Plural}} WILL seek criminal prosecution for violations.

NO DEFENSE CLAUSE
-----------------
The following ARE NOT defenses:
Fair use or research exception, non-commercial purpose, de minimis use,
transformative use, interoperability, accident, third-party action,
industry practice.

AUDIT RIGHTS
------------
48-hour notice forensic audit and forensic examination of suspect systems.
Refusal = admission of violation with maximum damages.

INTERNATIONAL ENFORCEMENT
-------------------------
Enforceable worldwide under the Berne Convention and TRIPS agreement.

SEVERABILITY WITH TEETH
-----------------------
If any provision is held unenforceable, the remainder survives with a
DOUBLING of remaining liquidated damages.

ACKNOWLEDGMENT
--------------
BY ACCESSING THIS WORK, YOU ACCEPT PERSONAL LIABILITY AND WAIVE ALL DEFENSES.

PERMISSION REQUESTS
-------------------
{{.ContactInfo}}
Required: Written application, $10,000 processing fee, $10M insurance, $100,000 bond

GOVERNING LAW
-------------
{{.Jurisdiction}} and United States Federal law. Construed STRICTLY against violators.

WARNING: SEVERE PENALTIES - NO TOLERANCE FOR AI/ML TRAINING
============================================================

================================================================================
Last Updated: {{.Date}}
License Version: 2.0 MAXIMUM PROTECTION
Copyright Holder{{.Plural}}: {{.EntityName}}
Digital Signature: {{.DigitalSignature}}
Registration Marker: {{.RegistrationMarker}}
================================================================================
`
